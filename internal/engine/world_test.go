package engine

import (
	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/sprite"
	"github.com/jws412/Facade/internal/tile"
)

const (
	testTile    = 16
	testScreenW = 384
	testScreenH = 216
	testColumn  = testScreenH / testTile
	floorTop    = 32 // two solid rows
)

// gridBuilder makes column-major test levels.
type gridBuilder struct {
	columns int
	tiles   []tile.Type
}

func newGridBuilder(columns int) *gridBuilder {
	return &gridBuilder{columns: columns, tiles: make([]tile.Type, columns*testColumn)}
}

func (b *gridBuilder) solid(col, row int) *gridBuilder {
	b.tiles[col*testColumn+row] = tile.Solid
	return b
}

// floor fills rows 0 and 1 of columns [from, to).
func (b *gridBuilder) floor(from, to int) *gridBuilder {
	for c := from; c < to; c++ {
		b.solid(c, 0).solid(c, 1)
	}
	return b
}

func (b *gridBuilder) build() *tile.Grid {
	return tile.NewGrid(b.columns, testColumn, b.tiles)
}

func testMolds() *sprite.Table {
	t := sprite.NewTable()
	t.Register(actor.Player, &sprite.Mold{
		W: 16, H: 24, MaxSpeedX: 48, Frames: 4,
		Pix: make([]core.Pixel, 16*24*4),
	})
	t.Register(actor.Bug, &sprite.Mold{
		W: 16, H: 16, MaxSpeedX: 16, Frames: 3,
		Pix: make([]core.Pixel, 16*16*3),
	})
	return t
}

func newTestWorld(g *tile.Grid, player actor.Pos, secondaries ...actor.Actor) *World {
	return &World{
		Grid:     g,
		Molds:    testMolds(),
		Actors:   actor.NewStore(actor.Actor{Pos: player, Species: actor.Player}, secondaries),
		Spawn:    actor.Pos{X: 16, Y: floorTop},
		TileSize: testTile,
		ScreenW:  testScreenW,
		ScreenH:  testScreenH,
		Physics:  DefaultPhysics(),
	}
}

func bugAt(x, y uint16, code int8) actor.Actor {
	return actor.Actor{Pos: actor.Pos{X: x, Y: y}, Species: actor.Bug, Anim: actor.AnimFromCode(code)}
}

// settle ticks without input until the Player stands still on the ground
// with the jump armed.
func settle(e *Engine, w *World) {
	for i := 0; i < 200 && !e.Grounded(); i++ {
		e.Tick(w, 0, true)
	}
	e.Tick(w, 0, true)
}
