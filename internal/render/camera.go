// Package render turns a World into pixels: it places the camera around the
// Player and composites background, sprites and tiles into a framebuffer.
package render

import (
	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/engine"
)

// Mode is where the camera sits relative to the level edges.
type Mode uint8

const (
	LeftEdge  Mode = iota // Camera pinned to the level start, player moves on screen
	Scrolling             // Player centred, level scrolls
	RightEdge             // Camera pinned to the level end
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case LeftEdge:
		return "left"
	case Scrolling:
		return "scrolling"
	case RightEdge:
		return "right"
	default:
		return "unknown"
	}
}

// View is the camera placement for one frame.
type View struct {
	Mode     Mode
	ScreenX  int // Player's x on screen
	CamLeft  int // Level x shown at screen column 0
	LeftCol  int // First tile column drawn
	RightCol int // One past the last tile column drawn
	Offset   int // Pixel columns the leftmost tile column is shifted off screen
}

// Follow places the camera for the current Player position.
//
// While scrolling, Offset is taken modulo the Player's width rather than the
// tile size. The two are equal for the stock molds; a wider or narrower
// Player shows a seam between the partial and interior tile columns.
func Follow(w *engine.World) View {
	pm := w.Molds.MustFor(actor.Player)
	px := int(w.Actors.Player.Pos.X)
	pw := pm.W
	size := w.TileSize
	levelW := w.LevelWidth()
	screenW := w.ScreenW

	var v View
	switch {
	case px > levelW-(screenW-pw)/2-size:
		v = View{
			Mode:     RightEdge,
			ScreenX:  px - levelW + screenW - pw + size,
			LeftCol:  (levelW - screenW) / size,
			RightCol: levelW / size,
		}
	case px >= (screenW-pw)/2:
		v = View{
			Mode:     Scrolling,
			ScreenX:  (screenW - pw) / 2,
			LeftCol:  (px - screenW/2 + pw/2) / size,
			RightCol: (px + screenW/2 + pw/2 + size - 1) / size,
			Offset:   (px + pw/2) % pw,
		}
	default:
		v = View{
			Mode:     LeftEdge,
			ScreenX:  px,
			RightCol: screenW / size,
		}
	}
	v.CamLeft = px - v.ScreenX
	return v
}

// CamRight returns one past the last level x shown.
func (v View) CamRight(screenW int) int {
	return v.CamLeft + screenW
}
