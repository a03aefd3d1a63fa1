package asset

import (
	"fmt"
	"math/bits"

	"github.com/jws412/Facade/internal/core"
)

// DecodeImage decodes one palette-indexed image of a known pixel count.
//
// Layout: a color-count byte, one RRRGGGBB palette byte per color, then
// pixel codes of the minimum width able to index the palette (at least one
// bit), packed MSB first without padding between codes. It returns the
// pixels and the number of bytes consumed, so images can be stored back to
// back.
func DecodeImage(data []byte, pixels int) ([]core.Pixel, int, error) {
	if len(data) < 1 {
		return nil, 0, fmt.Errorf("image header: %w", ErrTruncated)
	}
	colors := int(data[0])
	if colors == 0 {
		return nil, 0, ErrNoPalette
	}
	if len(data) < 1+colors {
		return nil, 0, fmt.Errorf("palette of %d colors: %w", colors, ErrTruncated)
	}

	palette := make([]core.Pixel, colors)
	for i, b := range data[1 : 1+colors] {
		palette[i] = PaletteColor(b)
	}

	width := CodeBits(colors)
	size := (pixels*width + 7) / 8
	body := data[1+colors:]
	if len(body) < size {
		return nil, 0, fmt.Errorf("image of %d pixels: %w", pixels, ErrTruncated)
	}

	r := &bitReader{data: body[:size]}
	out := make([]core.Pixel, pixels)
	for i := range out {
		code, _ := r.read(width)
		if int(code) >= colors {
			return nil, 0, fmt.Errorf("pixel %d code %d: %w", i, code, ErrBadColorCode)
		}
		out[i] = palette[code]
	}
	return out, 1 + colors + size, nil
}

// PaletteColor expands a packed RRRGGGBB byte to a pixel.
func PaletteColor(b byte) core.Pixel {
	return core.RGB(b>>5<<5, (b>>2&7)<<5, (b&3)<<6)
}

// CodeBits returns the code width for a palette of n colors.
func CodeBits(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n - 1))
}
