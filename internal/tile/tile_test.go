package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jws412/Facade/internal/core"
)

func TestGridColumnMajor(t *testing.T) {
	// 2 columns of 3: column 0 has a floor tile, column 1 is stone at row 2.
	g := NewGrid(2, 3, []Type{Solid, Air, Air, Air, Air, Solid})

	assert.Equal(t, 2, g.Columns())
	assert.Equal(t, 3, g.ColumnHeight())
	assert.Equal(t, Solid, g.At(0, 0))
	assert.Equal(t, Solid, g.At(1, 2))
	assert.Equal(t, Air, g.At(1, 0))
	assert.Equal(t, 5, g.Index(1, 2))
	assert.Equal(t, Solid, g.AtIndex(5))
}

func TestGridOutOfRangeIsAir(t *testing.T) {
	g := NewGrid(1, 2, []Type{Solid, Solid})

	tests := []struct {
		name     string
		col, row int
	}{
		{"left of level", -1, 0},
		{"right of level", 1, 0},
		{"below floor", 0, -1},
		{"above ceiling", 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Air, g.At(tc.col, tc.row))
		})
	}
	assert.Equal(t, Air, g.AtIndex(-1))
	assert.Equal(t, Air, g.AtIndex(2))
}

func TestGridShortInputPadsWithAir(t *testing.T) {
	g := NewGrid(2, 2, []Type{Solid})
	assert.Equal(t, Solid, g.At(0, 0))
	assert.Equal(t, Air, g.At(1, 1))
	assert.Equal(t, Air, g.AtIndex(3))
}

func TestAtlasRejectsWrongSize(t *testing.T) {
	a := NewAtlas(2)
	assert.False(t, a.Set(Solid, make([]core.Pixel, 3)))
	assert.True(t, a.Set(Solid, make([]core.Pixel, 4)))
	assert.Len(t, a.Image(Solid), 4)
	assert.Nil(t, a.Image(Air))

	var none *Atlas
	assert.Nil(t, none.Image(Solid))
}
