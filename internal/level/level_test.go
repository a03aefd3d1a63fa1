package level

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/asset"
	"github.com/jws412/Facade/internal/tile"
)

const (
	testColumn = 13
	testTile   = 16
)

func TestBuiltinLevelsLoad(t *testing.T) {
	loader := Builtin(testColumn, testTile)

	ids, err := loader.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"01-meadow", "02-steps", "03-caves"}, ids)

	levels, err := loader.LoadAll()
	require.NoError(t, err)
	for _, lvl := range levels {
		t.Run(lvl.ID, func(t *testing.T) {
			assert.NoError(t, lvl.Fits(384, testTile))
			assert.NotEmpty(t, lvl.Name)
			assert.NotEmpty(t, lvl.Actors)

			g := lvl.Grid(testColumn)
			col, row := int(lvl.Spawn.X)/testTile, int(lvl.Spawn.Y)/testTile
			assert.Equal(t, tile.Air, g.At(col, row), "spawn tile is air")
			assert.Equal(t, tile.Solid, g.At(col, row-1), "spawn stands on ground")
		})
	}
}

func TestLoadByID(t *testing.T) {
	lvl, err := Builtin(testColumn, testTile).LoadByID("01-meadow")
	require.NoError(t, err)
	assert.Equal(t, "Meadow", lvl.Name)
	assert.Equal(t, "builtin/01-meadow.yaml", lvl.FilePath)
	assert.Equal(t, "1", lvl.Metadata["difficulty"])

	_, err = Builtin(testColumn, testTile).LoadByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoaderReadsBinaryWithActors(t *testing.T) {
	tiles := make([]tile.Type, 30*testColumn)
	for c := 0; c < 30; c++ {
		tiles[c*testColumn] = tile.Solid
	}
	fsys := fstest.MapFS{
		"packs/a.lvl":      {Data: asset.EncodeLevel(30, tiles)},
		"packs/a.gen":      {Data: []byte("# one bug\n1\n{ 1 64 16 }\n")},
		"packs/b.lvl":      {Data: asset.EncodeLevel(30, tiles)},
		"packs/broken.yml": {Data: []byte("map: |\n  x\n")},
		"packs/notes.txt":  {Data: []byte("ignored")},
	}
	loader := &Loader{FS: fsys, Root: "packs", ColumnHeight: testColumn, TileSize: testTile}

	levels, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, levels, 2, "broken and unsupported files are skipped")

	a := levels[0]
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, actor.Pos{X: 0, Y: 16}, a.Spawn)
	require.Len(t, a.Actors, 1)
	assert.Equal(t, actor.Pos{X: 64, Y: 16}, a.Actors[0].Pos)

	assert.Empty(t, levels[1].Actors)

	_, err = loader.LoadFile("packs/broken.yml")
	assert.Error(t, err)
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := &Loader{FS: fstest.MapFS{}, Root: "missing", ColumnHeight: testColumn, TileSize: testTile}
	_, err := loader.LoadAll()
	assert.Error(t, err)
}

func TestFits(t *testing.T) {
	narrow := Level{ID: "n", Columns: 23}
	assert.ErrorIs(t, narrow.Fits(384, testTile), ErrTooNarrow)

	exact := Level{ID: "e", Columns: 24}
	assert.NoError(t, exact.Fits(384, testTile))

	wide := Level{ID: "w", Columns: MaxColumns + 1}
	assert.ErrorIs(t, wide.Fits(384, testTile), ErrTooWide)

	// 4095 columns of 16 px reach into the wraparound band near 65535.
	edge := Level{ID: "edge", Columns: MaxColumns}
	assert.ErrorIs(t, edge.Fits(384, testTile), ErrTooWide)
	widest := Level{ID: "widest", Columns: MaxWidth / testTile}
	assert.NoError(t, widest.Fits(384, testTile))
}

func TestNewStoreSnapshotsActors(t *testing.T) {
	lvl := Level{
		Spawn:  actor.Pos{X: 32, Y: 32},
		Actors: []actor.Actor{{Species: actor.Bug, Pos: actor.Pos{X: 100, Y: 32}}},
	}
	s := lvl.NewStore()
	assert.Equal(t, actor.Player, s.Player.Species)
	assert.Equal(t, lvl.Spawn, s.Player.Pos)

	s.Secondary[0].Despawn()
	assert.Equal(t, actor.Bug, lvl.Actors[0].Species, "level data is not aliased")
}
