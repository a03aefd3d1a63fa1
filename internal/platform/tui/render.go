package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jws412/Facade/internal/core"
)

// halfBlock paints the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const halfBlock = "▀"

// Scale returns the smallest integer downsampling factor that fits a
// fbW x fbH framebuffer into cols x rows terminal cells, two pixels per cell
// vertically.
func Scale(fbW, fbH, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	s := 1
	for fbW/s > cols || (fbH/s+1)/2 > rows {
		s++
	}
	return s
}

// RenderFramebuffer converts a framebuffer into styled half-block text,
// downsampled by scale. Framebuffer row 0 is the bottom of the picture, so
// the last row is printed first. Adjacent cells with the same colors share
// one style to minimize ANSI escape sequences.
func RenderFramebuffer(fb *core.Framebuffer, scale int) string {
	if scale < 1 {
		scale = 1
	}
	w := fb.Width() / scale
	h := fb.Height() / scale
	rows := (h + 1) / 2

	// sample returns the pixel at downsampled (x, y), y counted from the top.
	sample := func(x, y int) core.Pixel {
		if y >= h {
			return 0
		}
		return fb.Get(x*scale, fb.Height()-1-y*scale)
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(w*rows*4 + rows)

	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < w {
			top, bottom := sample(x, 2*r), sample(x, 2*r+1)
			n := 1
			for x+n < w && sample(x+n, 2*r) == top && sample(x+n, 2*r+1) == bottom {
				n++
			}
			style := lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
			x += n
		}
	}
	return sb.String()
}

func hexColor(p core.Pixel) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", p.R(), p.G(), p.B()))
}
