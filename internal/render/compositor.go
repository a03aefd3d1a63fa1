package render

import (
	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/engine"
	"github.com/jws412/Facade/internal/tile"
)

// Compositor draws a World into a framebuffer. It owns the static art
// (background and tile atlas) and consults the species behaviors to park
// actors that fall out of view.
type Compositor struct {
	atlas      *tile.Atlas
	background []core.Pixel
	behaviors  *engine.Behaviors
}

// NewCompositor creates a compositor. A nil background clears to black.
func NewCompositor(atlas *tile.Atlas, background []core.Pixel, behaviors *engine.Behaviors) *Compositor {
	if behaviors == nil {
		behaviors = engine.DefaultBehaviors()
	}
	return &Compositor{atlas: atlas, background: background, behaviors: behaviors}
}

// Render draws one frame and returns the camera used. Besides writing fb,
// the only World state it touches is the animation code or species of
// secondary actors that are out of view.
func (c *Compositor) Render(w *engine.World, fb *core.Framebuffer) View {
	if c.background != nil {
		fb.CopyFrom(c.background)
	} else {
		fb.Clear()
	}

	v := Follow(w)

	p := &w.Actors.Player
	w.Molds.MustFor(actor.Player).Draw(fb, v.ScreenX, int(p.Pos.Y), p.Anim)

	camLeft, camRight := v.CamLeft, v.CamRight(w.ScreenW)
	for i := range w.Actors.Secondary {
		a := &w.Actors.Secondary[i]
		if !a.Active() {
			continue
		}
		m, ok := w.Molds.For(a.Species)
		if !ok {
			continue
		}

		left := int(a.Pos.X)
		right := left + m.W
		if right <= camLeft || left >= camRight {
			c.behaviors.For(a.Species).Offscreen(w, a)
			continue
		}

		from, to := 0, m.W
		if right > camRight {
			to = camRight - left
		}
		if left < camLeft {
			from = camLeft - left
			left = camLeft
		}
		m.Blit(fb, left-camLeft, int(a.Pos.Y), a.Anim, from, to)
	}

	c.drawTiles(w, fb, v)
	return v
}

// drawTiles blits the visible tile columns in three passes: the left column
// with its first Offset pixel columns cut, the whole interior columns, and
// the right column showing only its first Offset pixel columns.
func (c *Compositor) drawTiles(w *engine.World, fb *core.Framebuffer, v View) {
	g := w.Grid
	size := w.TileSize
	colH := w.ColumnHeight()
	off := v.Offset

	c.drawColumn(fb, g, v.LeftCol, colH, size, -off, off, size)

	end := v.RightCol
	if off > 0 {
		end--
	}

	// Interior tiles are walked by flat index; after a column's worth of
	// rows the position wraps to the bottom of the next screen column.
	x, y := size-off, 0
	for i := g.Index(v.LeftCol+1, 0); i < g.Index(end, 0); i++ {
		c.drawTile(fb, g.AtIndex(i), x, y, 0, size)
		y += size
		if y >= colH*size {
			y = 0
			x += size
		}
	}

	for col := end; col < v.RightCol; col++ {
		c.drawColumn(fb, g, col, colH, size, w.ScreenW-off, 0, off)
	}
}

func (c *Compositor) drawColumn(fb *core.Framebuffer, g *tile.Grid, col, colH, size, x, from, to int) {
	for row := 0; row < colH; row++ {
		c.drawTile(fb, g.At(col, row), x, row*size, from, to)
	}
}

// drawTile copies pixel columns [from, to) of a tile image so that column
// zero of the image lands on screen x.
func (c *Compositor) drawTile(fb *core.Framebuffer, t tile.Type, x, y, from, to int) {
	img := c.atlas.Image(t)
	if img == nil {
		return
	}
	size := c.atlas.Size
	from = core.Max(from, 0)
	to = core.Min(to, size)
	for r := 0; r < size; r++ {
		row := img[r*size : (r+1)*size]
		for px := from; px < to; px++ {
			p := row[px]
			if p == core.Transparent {
				continue
			}
			fb.Set(x+px, y+r, p)
		}
	}
}
