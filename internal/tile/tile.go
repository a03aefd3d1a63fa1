// Package tile holds the immutable level grid and the images drawn for each
// tile type.
package tile

import "github.com/jws412/Facade/internal/core"

// Type identifies what occupies a grid cell.
type Type uint8

const (
	Air   Type = iota // Empty, passable
	Solid             // Stone, blocks the player
)

// String returns a human-readable name for the tile type.
func (t Type) String() string {
	switch t {
	case Air:
		return "air"
	case Solid:
		return "solid"
	default:
		return "unknown"
	}
}

// Grid is a column-major tile map. Row 0 is the bottom of the level, so the
// flat index of (col, row) is col*ColumnHeight + row.
type Grid struct {
	columns      int
	columnHeight int
	tiles        []Type
}

// NewGrid wraps tiles as a columns x columnHeight grid. Missing trailing
// tiles read as Air and extra ones are ignored.
func NewGrid(columns, columnHeight int, tiles []Type) *Grid {
	n := columns * columnHeight
	buf := make([]Type, n)
	copy(buf, tiles)
	return &Grid{columns: columns, columnHeight: columnHeight, tiles: buf}
}

// Columns returns the level width in tiles.
func (g *Grid) Columns() int { return g.columns }

// ColumnHeight returns the number of tiles in one column.
func (g *Grid) ColumnHeight() int { return g.columnHeight }

// Index returns the flat index of (col, row).
func (g *Grid) Index(col, row int) int {
	return col*g.columnHeight + row
}

// At returns the tile at (col, row). Anything outside the grid is Air.
func (g *Grid) At(col, row int) Type {
	if col < 0 || col >= g.columns || row < 0 || row >= g.columnHeight {
		return Air
	}
	return g.tiles[g.Index(col, row)]
}

// AtIndex returns the tile at a flat index, Air when out of range.
func (g *Grid) AtIndex(i int) Type {
	if i < 0 || i >= len(g.tiles) {
		return Air
	}
	return g.tiles[i]
}

// Atlas maps each tile type to a Size x Size image stored bottom row first.
// A nil image means the type is never drawn.
type Atlas struct {
	Size   int
	Images map[Type][]core.Pixel
}

// NewAtlas creates an empty atlas for square tiles of the given size.
func NewAtlas(size int) *Atlas {
	return &Atlas{Size: size, Images: make(map[Type][]core.Pixel)}
}

// Set registers the image for t. Images of the wrong length are rejected.
func (a *Atlas) Set(t Type, img []core.Pixel) bool {
	if len(img) != a.Size*a.Size {
		return false
	}
	a.Images[t] = img
	return true
}

// Image returns the image for t, or nil.
func (a *Atlas) Image(t Type) []core.Pixel {
	if a == nil {
		return nil
	}
	return a.Images[t]
}
