package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jws412/Facade/internal/core"
)

func TestPaletteColor(t *testing.T) {
	assert.Equal(t, core.Transparent, PaletteColor(0xE3))
	assert.Equal(t, core.RGB(0xE0, 0xE0, 0xC0), PaletteColor(0xFF))
	assert.Equal(t, core.RGB(0, 0x20, 0), PaletteColor(0x04))
}

func TestCodeBits(t *testing.T) {
	tests := []struct{ colors, bits int }{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {256, 8},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.bits, CodeBits(tc.colors), "colors=%d", tc.colors)
	}
}

func TestDecodeImageOneBit(t *testing.T) {
	// Codes 1011 0000 11 for ten pixels.
	data := []byte{2, 0xE3, 0xFF, 0xB0, 0xC0, 0x99}

	pix, n, err := DecodeImage(data, 10)
	require.NoError(t, err)

	on, off := PaletteColor(0xFF), core.Transparent
	assert.Equal(t, []core.Pixel{on, off, on, on, off, off, off, off, on, on}, pix)
	assert.Equal(t, 5, n, "trailing bytes belong to the next image")
}

func TestDecodeImageCodesStraddleBytes(t *testing.T) {
	// Five colors use three-bit codes: 100 011 010 001 000.
	data := []byte{5, 0x00, 0x20, 0x04, 0x01, 0xE0, 0x8D, 0x10}

	pix, n, err := DecodeImage(data, 5)
	require.NoError(t, err)

	assert.Equal(t, []core.Pixel{
		core.RGB(0xE0, 0, 0),
		core.RGB(0, 0, 0x40),
		core.RGB(0, 0x20, 0),
		core.RGB(0x20, 0, 0),
		core.RGB(0, 0, 0),
	}, pix)
	assert.Equal(t, len(data), n)
}

func TestDecodeImageBackToBack(t *testing.T) {
	first := []byte{1, 0x03, 0x00}
	second := []byte{1, 0xE0, 0x00}
	data := append(append([]byte{}, first...), second...)

	a, n, err := DecodeImage(data, 4)
	require.NoError(t, err)
	b, _, err := DecodeImage(data[n:], 4)
	require.NoError(t, err)

	assert.Equal(t, PaletteColor(0x03), a[0])
	assert.Equal(t, PaletteColor(0xE0), b[3])
}

func TestDecodeImageErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		pixels int
		err    error
	}{
		{"empty", nil, 4, ErrTruncated},
		{"no colors", []byte{0}, 4, ErrNoPalette},
		{"short palette", []byte{3, 0x00}, 4, ErrTruncated},
		{"short body", []byte{2, 0x00, 0xFF, 0xAA}, 16, ErrTruncated},
		{"code past palette", []byte{3, 0x00, 0x01, 0x02, 0xC0}, 1, ErrBadColorCode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeImage(tc.data, tc.pixels)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeMold(t *testing.T) {
	header := []byte{2, 1, 16, 2}
	image := []byte{2, 0x00, 0xE0, 0x90}

	m, err := DecodeMold(header, image)
	require.NoError(t, err)

	assert.Equal(t, 2, m.W)
	assert.Equal(t, 1, m.H)
	assert.Equal(t, 16, m.MaxSpeedX)
	assert.Equal(t, 2, m.Frames)
	assert.True(t, m.Valid())
	assert.Equal(t, PaletteColor(0xE0), m.Pix[0])
	assert.Equal(t, PaletteColor(0x00), m.Pix[1])

	_, err = DecodeMold(header[:3], image)
	assert.ErrorIs(t, err, ErrTruncated)
	_, err = DecodeMold(header, image[:3])
	assert.ErrorIs(t, err, ErrTruncated)
}
