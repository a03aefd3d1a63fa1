package asset

import (
	"fmt"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/tile"
)

// Level is a decoded level layout.
type Level struct {
	Columns int
	Tiles   []tile.Type // Column-major, bottom row first
	Spawn   actor.Pos
}

// DecodeLevel decodes a packed level. The first twelve bits hold the column
// count; every following bit is one tile (set = solid), MSB first, walking
// each column bottom to top and the columns left to right. The spawn point
// comes from FindSpawn.
func DecodeLevel(data []byte, columnHeight, tileSize int) (*Level, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("level header: %w", ErrTruncated)
	}
	columns := int(data[0])<<4 | int(data[1])>>4
	n := columns * columnHeight

	// The low nibble of the second header byte already holds four tiles.
	r := &bitReader{data: data[1:], pos: 4}
	if r.remaining() < n {
		return nil, fmt.Errorf("level with %d tiles: %w", n, ErrTruncated)
	}

	lvl := &Level{Columns: columns, Tiles: make([]tile.Type, n)}
	for i := 0; i < n; i++ {
		bit, _ := r.read(1)
		lvl.Tiles[i] = tile.Type(bit)
	}
	lvl.Spawn = FindSpawn(lvl.Tiles, columnHeight, tileSize)
	return lvl, nil
}

// FindSpawn returns the pixel position of the first air tile that directly
// follows a non-air one in column-major order, or the origin.
func FindSpawn(tiles []tile.Type, columnHeight, tileSize int) actor.Pos {
	if columnHeight <= 0 {
		return actor.Pos{}
	}
	for i := 1; i < len(tiles); i++ {
		if tiles[i-1] != tile.Air && tiles[i] == tile.Air {
			return actor.Pos{
				X: uint16(i / columnHeight * tileSize),
				Y: uint16(i % columnHeight * tileSize),
			}
		}
	}
	return actor.Pos{}
}

// EncodeLevel is the inverse of DecodeLevel for solid/air grids.
func EncodeLevel(columns int, tiles []tile.Type) []byte {
	n := len(tiles)
	out := make([]byte, 1+(4+n+7)/8)
	out[0] = byte(columns >> 4)
	out[1] = byte(columns&0x0F) << 4
	for i, t := range tiles {
		if t == tile.Air {
			continue
		}
		bit := 12 + i
		out[bit>>3] |= 1 << (7 - uint(bit&7))
	}
	return out
}
