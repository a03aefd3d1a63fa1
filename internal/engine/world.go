package engine

import (
	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/sprite"
	"github.com/jws412/Facade/internal/tile"
)

// World is everything one tick reads and writes. It is passed explicitly to
// the engine and the compositor instead of living in package state, so two
// worlds can run side by side.
type World struct {
	Grid     *tile.Grid
	Molds    *sprite.Table
	Actors   *actor.Store
	Spawn    actor.Pos
	TileSize int
	ScreenW  int // Backbuffer width in pixels
	ScreenH  int // Backbuffer height in pixels
	Physics  Physics
}

// LevelWidth returns the level width in pixels.
func (w *World) LevelWidth() int {
	return w.Grid.Columns() * w.TileSize
}

// ColumnHeight returns the number of tiles in one screen-high column.
func (w *World) ColumnHeight() int {
	return w.ScreenH / w.TileSize
}

// Player is a shortcut for the store's Player.
func (w *World) Player() *actor.Actor {
	return &w.Actors.Player
}
