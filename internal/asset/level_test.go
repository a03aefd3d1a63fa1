package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/tile"
)

const (
	S = tile.Solid
	A = tile.Air
)

func TestDecodeLevel(t *testing.T) {
	// 2 columns of 3: [S A A] [S S A]. Bits 1001 share the header byte.
	data := []byte{0x00, 0x29, 0x80}

	lvl, err := DecodeLevel(data, 3, 16)
	require.NoError(t, err)

	assert.Equal(t, 2, lvl.Columns)
	assert.Equal(t, []tile.Type{S, A, A, S, S, A}, lvl.Tiles)
	assert.Equal(t, actor.Pos{X: 0, Y: 16}, lvl.Spawn)
}

func TestDecodeLevelWideHeader(t *testing.T) {
	data := make([]byte, 2+291)
	data[0], data[1] = 0x12, 0x30

	lvl, err := DecodeLevel(data, 1, 16)
	require.NoError(t, err)
	assert.Equal(t, 0x123, lvl.Columns)
	assert.Equal(t, actor.Pos{}, lvl.Spawn, "no solid tile means no spawn")
}

func TestDecodeLevelSpawnPastHeader(t *testing.T) {
	tiles := []tile.Type{A, A, A, S, A, A}
	lvl, err := DecodeLevel(EncodeLevel(2, tiles), 3, 16)
	require.NoError(t, err)

	assert.Equal(t, tiles, lvl.Tiles)
	assert.Equal(t, actor.Pos{X: 16, Y: 16}, lvl.Spawn)
}

func TestDecodeLevelRoundTrip(t *testing.T) {
	tiles := make([]tile.Type, 30*13)
	for c := 0; c < 30; c++ {
		tiles[c*13] = S
		if c%7 == 3 {
			tiles[c*13+1] = S
		}
	}
	lvl, err := DecodeLevel(EncodeLevel(30, tiles), 13, 16)
	require.NoError(t, err)
	assert.Equal(t, 30, lvl.Columns)
	assert.Equal(t, tiles, lvl.Tiles)
	assert.Equal(t, actor.Pos{X: 0, Y: 16}, lvl.Spawn)
}

func TestDecodeLevelTruncated(t *testing.T) {
	_, err := DecodeLevel([]byte{0x01}, 13, 16)
	assert.ErrorIs(t, err, ErrTruncated)

	// 16 columns of 13 tiles need far more than one byte.
	_, err = DecodeLevel([]byte{0x01, 0x00, 0xFF}, 13, 16)
	assert.ErrorIs(t, err, ErrTruncated)
}
