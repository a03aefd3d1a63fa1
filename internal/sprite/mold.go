// Package sprite stores actor molds (collision size, speed cap and animation
// frames) and draws their frames into a framebuffer.
package sprite

import (
	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/core"
)

// Mold is the shared template for every actor of one species. Pix holds
// Frames images of W x H pixels back to back, each stored bottom row first.
type Mold struct {
	W         int
	H         int
	MaxSpeedX int
	Frames    int
	Pix       []core.Pixel
}

// Valid reports whether Pix is large enough for the declared frames.
func (m *Mold) Valid() bool {
	return m.W > 0 && m.H > 0 && m.Frames > 0 && len(m.Pix) >= m.W*m.H*m.Frames
}

// Frame returns the image for an animation state. Magnitude m maps to image
// Frames-1-m; ok is false when the magnitude has no image.
func (m *Mold) Frame(a actor.Anim) (img []core.Pixel, ok bool) {
	mag := int(a.Mag)
	if mag >= m.Frames {
		return nil, false
	}
	size := m.W * m.H
	start := (m.Frames - 1 - mag) * size
	if start+size > len(m.Pix) {
		return nil, false
	}
	return m.Pix[start : start+size], true
}

// Blit draws columns [from, to) of the frame for a, placing column from at
// screen (x, y). Mirrored frames read each row right to left. Transparent
// pixels and anything outside dst are skipped.
func (m *Mold) Blit(dst *core.Framebuffer, x, y int, a actor.Anim, from, to int) {
	img, ok := m.Frame(a)
	if !ok {
		return
	}
	from = core.Max(from, 0)
	to = core.Min(to, m.W)

	start, step := 0, 1
	if a.Mirrored {
		start, step = m.W-1, -1
	}
	for r := 0; r < m.H; r++ {
		row := img[r*m.W : (r+1)*m.W]
		for col := from; col < to; col++ {
			p := row[start+step*col]
			if p == core.Transparent {
				continue
			}
			dst.Set(x+col-from, y+r, p)
		}
	}
}

// Draw blits the whole frame with its left edge at x.
func (m *Mold) Draw(dst *core.Framebuffer, x, y int, a actor.Anim) {
	m.Blit(dst, x, y, a, 0, m.W)
}
