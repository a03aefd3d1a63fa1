// Package engine advances the platformer simulation by one fixed tick. The
// Player is driven by input, integer kinematics and tile probes; secondary
// actors are dispatched to their species Behavior.
package engine

import (
	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/tile"
)

// Stats counts notable events since the engine was created or Reset.
type Stats struct {
	Ticks  int
	Deaths int
	Stomps int
}

// Engine carries the Player's motion state between ticks. It holds no level
// data; everything else lives in the World passed to Tick.
type Engine struct {
	behaviors *Behaviors

	sub      int   // Horizontal sub-pixel accumulator
	armed    bool  // Jump may launch: pressed from the ground and not yet released
	wasJump  bool  // Jump was held on the previous tick
	grounded bool  // Standing on a tile
	hold     int   // Ticks the current jump has launched
	walk     uint8 // Pixels walked since the last walk frame

	stats Stats
}

// New creates an engine with the built-in behaviors.
func New() *Engine {
	e := &Engine{behaviors: DefaultBehaviors()}
	e.Reset()
	return e
}

// Reset returns the Player motion state to the level start.
func (e *Engine) Reset() {
	e.sub = 0
	e.armed = false
	e.wasJump = true
	e.grounded = false
	e.hold = 0
	e.walk = 0
	e.stats = Stats{}
}

// Behaviors exposes the species table so callers can register more.
func (e *Engine) Behaviors() *Behaviors {
	return e.behaviors
}

// Stats returns event counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Grounded reports whether the Player is standing on a tile.
func (e *Engine) Grounded() bool {
	return e.grounded
}

// Tick advances the world by one step. Buttons are ignored unless the
// window has focus. Tick never fails and never allocates.
func (e *Engine) Tick(w *World, buttons core.InputFrame, focus bool) {
	if !focus {
		buttons = 0
	}
	e.stats.Ticks++

	if !e.stepPlayer(w, buttons) {
		return
	}

	for i := range w.Actors.Secondary {
		a := &w.Actors.Secondary[i]
		if !a.Active() {
			continue
		}
		e.behaviors.For(a.Species).Step(e, w, a)
	}
}

// KillPlayer sends the Player back to the level spawn and restores every
// secondary actor from the snapshot.
func (e *Engine) KillPlayer(w *World) {
	w.Actors.Respawn(w.Spawn)
	e.stats.Deaths++
}

// bounce reflects the Player off a stomped actor and treats the jump button
// as freshly pressed so holding it extends the bounce.
func (e *Engine) bounce(w *World) {
	p := w.Player()
	p.Vel.Y = -p.Vel.Y
	e.wasJump = true
	e.armed = true
	e.hold = 0
	e.stats.Stomps++
}

// stepPlayer runs the Player's half of the tick. It returns false when the
// Player died and the rest of the tick must be skipped.
func (e *Engine) stepPlayer(w *World, buttons core.InputFrame) bool {
	p := w.Player()
	m := w.Molds.MustFor(actor.Player)
	ph := w.Physics
	size := w.TileSize

	vx, vy := int(p.Vel.X), int(p.Vel.Y)
	dir := core.Sign(vx)

	target := m.MaxSpeedX
	if !buttons.Has(core.ActionRun) {
		target /= ph.WalkDivisor
	}
	right := buttons.Has(core.ActionMoveRight)
	if right {
		vx = approach(vx, target, ph.AccelX)
	}
	if buttons.Has(core.ActionMoveLeft) {
		vx = approach(vx, -target, ph.AccelX)
	} else if !right && e.grounded {
		vx -= dir * ph.AccelX
	}

	jump := buttons.Has(core.ActionJump)
	if e.armed {
		if jump && e.hold < ph.MaxJumpHold {
			vy = ph.LaunchSpeed
			e.hold++
			e.grounded = false
		} else if e.wasJump {
			e.armed = false
		}
	} else if e.grounded {
		vy = 0
		e.hold = 0
		if !jump {
			e.armed = true
		}
	} else if vy > -ph.LaunchSpeed {
		vy -= ph.AccelY
	}
	e.wasJump = jump

	den := ph.SpeedDenominator
	dx := vx / den
	e.sub += vx % den
	if core.Abs(e.sub) > den {
		dx += dir
		e.sub = vx % den
	}
	dy := vy / den
	p.Pos.X = uint16(int(p.Pos.X) + dx)
	p.Pos.Y = uint16(int(p.Pos.Y) + dy)

	levelW := w.LevelWidth()
	if wrapped(dx, p.Pos.X) {
		p.Pos.X = 0
		vx = 0
	} else if int(p.Pos.X)+m.W > levelW {
		p.Pos.X = uint16(levelW - m.W)
		vx = 0
	}

	under := p.Pos.Y - 1
	if wrapped(dy, under) {
		p.Vel = actor.Vel{X: int16(vx), Y: int16(vy)}
		e.KillPlayer(w)
		return false
	} else if int(p.Pos.Y) > w.ScreenH-m.H {
		p.Pos.Y = uint16(w.ScreenH - m.H)
	}

	vx = e.collide(w, p, m.W, vx, vy, size)
	p.Vel = actor.Vel{X: int16(vx), Y: int16(vy)}

	e.animate(p, vx, dx, dir, ph.AnimPeriod)
	return true
}

// collide resolves the Player against the grid using the wheels (one pixel
// under each bottom corner) and the bottom corners themselves. It returns
// the possibly zeroed horizontal velocity.
func (e *Engine) collide(w *World, p *actor.Actor, width, vx, vy, size int) int {
	g := w.Grid
	x, y := int(p.Pos.X), int(p.Pos.Y)
	left, right := x/size, (x+width-1)/size

	wheelRow := int(p.Pos.Y-1) / size
	if g.At(left, wheelRow) == tile.Air && g.At(right, wheelRow) == tile.Air {
		if e.grounded {
			e.armed = false
			e.grounded = false
		}
		return vx
	}

	row := y / size
	lc, rc := g.At(left, row), g.At(right, row)
	if lc == tile.Air && rc == tile.Air {
		return vx
	}

	above := g.At(left, row+1) != tile.Air || g.At(right, row+1) != tile.Air
	if e.grounded || (lc == tile.Air || rc == tile.Air) && (above || e.hold == 0 || vy >= 0) {
		if rc == tile.Air {
			p.Pos.X = uint16(x/size*size + size)
		} else {
			p.Pos.X = uint16(x / size * size)
		}
		return 0
	}

	p.Pos.Y = uint16(y/size*size + size)
	e.grounded = true
	return vx
}

// animate picks the Player's frame. Facing only changes on the ground.
func (e *Engine) animate(p *actor.Actor, vx, dx, dir, period int) {
	code := p.Anim.Code()
	mirrored := p.Anim.Mirrored
	flip := false

	switch {
	case e.grounded && vx != 0:
		e.walk += uint8(dx * dir)
		if int(e.walk) > period {
			code = nextWalkFrame(code)
			e.walk = 0
		}
		flip = dir == -1 && !mirrored || dir == 1 && mirrored
	case e.grounded:
		code = 0
		if mirrored {
			code = -1
		}
	default:
		code = 2
		if e.armed {
			code = 3
		}
		flip = mirrored
	}
	p.Anim = actor.AnimFromCode(code)
	if flip {
		p.Anim = p.Anim.Flip()
	}
}

// nextWalkFrame alternates between the two walk frames, keeping facing.
func nextWalkFrame(code int8) int8 {
	switch code {
	case -2, -3:
		return -1
	case -1:
		return -2
	case 0:
		return 1
	default:
		return 0
	}
}
