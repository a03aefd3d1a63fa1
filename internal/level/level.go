// Package level loads playable levels from YAML packs and packed binary
// files. This package depends on the engine's data types but nothing in
// the engine depends on levels.
package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/tile"
)

var (
	ErrNotFound  = errors.New("level not found")
	ErrTooNarrow = errors.New("level narrower than the screen")
	ErrTooWide   = errors.New("level wider than the coordinate range")
)

// MaxColumns is the widest level the packed format can describe.
const MaxColumns = 1<<12 - 1

// MaxWidth is the widest level in pixels. The top of the uint16 range is
// left free so a step left past x=0 still reads as a wraparound.
const MaxWidth = math.MaxUint16 - 128

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Columns  int
	Tiles    []tile.Type // Column-major, bottom row first
	Spawn    actor.Pos
	Actors   []actor.Actor
	Metadata map[string]string
	FilePath string
}

// Grid creates the tile grid for columns of the given height.
func (l *Level) Grid(columnHeight int) *tile.Grid {
	return tile.NewGrid(l.Columns, columnHeight, l.Tiles)
}

// NewStore creates a fresh actor store with the Player at spawn.
func (l *Level) NewStore() *actor.Store {
	return actor.NewStore(actor.Actor{Pos: l.Spawn, Species: actor.Player}, l.Actors)
}

// Fits checks that the camera can scroll the level on a screenW-wide
// screen and that it stays below MaxWidth pixels.
func (l *Level) Fits(screenW, tileSize int) error {
	width := l.Columns * tileSize
	if width < screenW {
		return fmt.Errorf("%s: %d px for a %d px screen: %w", l.ID, width, screenW, ErrTooNarrow)
	}
	if l.Columns > MaxColumns || width > MaxWidth {
		return fmt.Errorf("%s: %d columns: %w", l.ID, l.Columns, ErrTooWide)
	}
	return nil
}
