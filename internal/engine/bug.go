package engine

import (
	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/tile"
)

// Defeat poses. A stomped Bug freezes in one of these until it leaves view.
const (
	bugDefeatRight int8 = 2
	bugDefeatLeft  int8 = -3
)

// Bug patrols back and forth, turning at walls, falls under gravity and is
// either deadly (to a grounded Player) or stompable (by an airborne one).
type Bug struct{}

// Step advances one Bug by a tick.
func (Bug) Step(e *Engine, w *World, a *actor.Actor) {
	m, ok := w.Molds.For(actor.Bug)
	if !ok {
		return
	}
	g := w.Grid
	ph := w.Physics
	size := w.TileSize

	under := a.Pos.Y - 1
	row := int(under) / size
	left := int(a.Pos.X) / size
	right := (int(a.Pos.X) + m.W - 1) / size

	vy := int(a.Vel.Y)
	if g.At(left, row) == tile.Air && g.At(right, row) == tile.Air && vy <= ph.LaunchSpeed {
		vy -= ph.AccelY
		if -vy > ph.LaunchSpeed {
			vy = -ph.LaunchSpeed
		}
		a.Pos.Y = uint16(int(a.Pos.Y) + vy/ph.SpeedDenominator)
	} else {
		vy = 0
		a.Pos.Y = uint16((int(under) + size - 1) / size * size)
	}
	a.Vel.Y = int16(vy)

	if wrapped(ph.LaunchSpeed+1, under) || wrapped(ph.LaunchSpeed+1, a.Pos.Y) {
		a.Despawn()
		a.Pos.Y = 0
		return
	}

	code := a.Anim.Code()
	leftWall := g.At(left, row+1) != tile.Air
	if leftWall {
		code = 0
	} else if g.At(right, row+1) != tile.Air {
		code = -1
	}

	step := m.MaxSpeedX / ph.SpeedDenominator
	sentinel := ph.offscreenCode()
	switch code {
	case sentinel:
		a.Anim = actor.AnimFromCode(0)
		return
	case ^sentinel:
		a.Anim = actor.AnimFromCode(-1)
		return
	case bugDefeatRight, bugDefeatLeft:
		a.Anim = actor.AnimFromCode(code)
		return
	case 0, 1:
		a.Pos.X = uint16(int(a.Pos.X) + step)
		code = int8(a.Pos.X>>3) & 1
	default:
		a.Pos.X = uint16(int(a.Pos.X) - step)
		code = ^(int8(a.Pos.X>>3) & 1)
	}

	if wrapped(m.MaxSpeedX, a.Pos.X) {
		a.Anim = actor.AnimFromCode(0)
		a.Pos = w.Spawn
		return
	}
	a.Anim = actor.AnimFromCode(code)

	p := w.Player()
	pm := w.Molds.MustFor(actor.Player)
	body := core.NewRect(int(a.Pos.X), int(a.Pos.Y), m.W, m.H)
	feet := core.NewRect(int(p.Pos.X), int(p.Pos.Y), pm.W, pm.H)
	if !feet.OverlapsX(body) || feet.Y < body.Y || feet.Y > body.Bottom() {
		return
	}

	if e.grounded {
		e.KillPlayer(w)
		return
	}
	if code >= 0 {
		a.Anim = actor.AnimFromCode(bugDefeatRight)
	} else {
		a.Anim = actor.AnimFromCode(bugDefeatLeft)
	}
	e.bounce(w)
}

// Offscreen parks a Bug that left the camera. Defeated bugs are removed;
// live ones keep their facing and wait in the sentinel pose.
func (Bug) Offscreen(w *World, a *actor.Actor) {
	code := a.Anim.Code()
	switch {
	case code == bugDefeatRight || code == bugDefeatLeft:
		a.Despawn()
	case code < 0:
		a.Anim = actor.AnimFromCode(^w.Physics.offscreenCode())
	default:
		a.Anim = actor.AnimFromCode(w.Physics.offscreenCode())
	}
}
