package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/core"
)

func TestWrapped(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		n         uint16
		expected  bool
	}{
		{"zero is fine", 3, 0, false},
		{"max wraps", 0, 65535, true},
		{"within threshold", 3, 65533, true},
		{"negative threshold uses magnitude", -3, 65532, true},
		{"just outside threshold", 3, 65531, false},
		{"high but legal", 49, 1000, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, wrapped(tc.threshold, tc.n))
		})
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).floor(0, 30).build(), actor.Pos{X: 48, Y: 100})
	e := New()

	settle(e, w)

	require.True(t, e.Grounded())
	p := w.Player()
	assert.Equal(t, uint16(floorTop), p.Pos.Y)
	assert.Equal(t, int16(0), p.Vel.Y)
	assert.Equal(t, int8(0), p.Anim.Code(), "standing still faces right")
	assert.True(t, e.armed, "jump arms once grounded with the button up")
}

func TestPlayerPositionStaysInBounds(t *testing.T) {
	g := newGridBuilder(24).floor(0, 24).solid(10, 2).solid(10, 3).solid(15, 4).build()
	w := newTestWorld(g, actor.Pos{X: 16, Y: floorTop})
	e := New()
	pm := w.Molds.MustFor(actor.Player)

	for i := 0; i < 2000; i++ {
		var in core.InputFrame
		switch (i / 90) % 4 {
		case 0:
			in.Set(core.ActionMoveRight)
			in.Set(core.ActionRun)
		case 1:
			in.Set(core.ActionMoveLeft)
		case 2:
			in.Set(core.ActionMoveRight)
		case 3:
			in.Set(core.ActionMoveLeft)
			in.Set(core.ActionRun)
		}
		if i%23 < 12 {
			in.Set(core.ActionJump)
		}
		e.Tick(w, in, true)

		p := w.Player()
		require.LessOrEqual(t, int(p.Pos.X)+pm.W, w.LevelWidth(), "tick %d", i)
		require.LessOrEqual(t, int(p.Pos.Y), w.ScreenH-pm.H, "tick %d", i)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (*World, Stats) {
		g := newGridBuilder(30).floor(0, 30).solid(12, 2).build()
		w := newTestWorld(g, actor.Pos{X: 16, Y: floorTop},
			bugAt(200, floorTop, -1), bugAt(300, 80, 0))
		e := New()
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame(core.ActionMoveRight)
			if i%40 < 10 {
				in.Set(core.ActionJump)
			}
			if i%200 > 150 {
				in = core.NewInputFrame(core.ActionMoveLeft, core.ActionRun)
			}
			e.Tick(w, in, true)
		}
		return w, e.Stats()
	}

	w1, s1 := run()
	w2, s2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, w1.Actors.Player, w2.Actors.Player)
	assert.Equal(t, w1.Actors.Secondary, w2.Actors.Secondary)
}

func TestJumpHoldIsCapped(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).floor(0, 30).build(), actor.Pos{X: 48, Y: floorTop})
	e := New()
	settle(e, w)

	jump := core.NewInputFrame(core.ActionJump)
	launches := 0
	peak := 0
	for i := 0; i < 300; i++ {
		e.Tick(w, jump, true)
		p := w.Player()
		if int(p.Vel.Y) == w.Physics.LaunchSpeed {
			launches++
		}
		peak = core.Max(peak, int(p.Pos.Y))
	}

	// The tick after the last launch keeps the launch speed before
	// gravity takes over.
	assert.Equal(t, w.Physics.MaxJumpHold+1, launches)
	assert.Greater(t, peak, floorTop+w.Physics.MaxJumpHold*3)
	assert.True(t, e.Grounded(), "held jump must not re-launch after landing")
	assert.Equal(t, uint16(floorTop), w.Player().Pos.Y)
}

func TestAirborneAnimationShowsHold(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).floor(0, 30).build(), actor.Pos{X: 48, Y: floorTop})
	e := New()
	settle(e, w)

	e.Tick(w, core.NewInputFrame(core.ActionJump), true)
	assert.Equal(t, int8(3), w.Player().Anim.Code())

	// Releasing disarms; the falling pose follows.
	e.Tick(w, 0, true)
	e.Tick(w, 0, true)
	assert.Equal(t, int8(2), w.Player().Anim.Code())
}

func TestFallingOffLevelRespawns(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).build(), actor.Pos{X: 100, Y: 40}, bugAt(200, 100, -1))
	e := New()

	for i := 0; i < 500 && e.Stats().Deaths == 0; i++ {
		e.Tick(w, 0, true)
	}

	require.Equal(t, 1, e.Stats().Deaths)
	assert.Equal(t, w.Spawn, w.Player().Pos)
	assert.Equal(t, w.Actors.Initial(0), w.Actors.Secondary[0], "secondary actors come back with the player")
}

func TestLeftEdgeStopsPlayer(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).floor(0, 30).build(), actor.Pos{X: 1, Y: floorTop})
	e := New()
	settle(e, w)
	w.Player().Pos.X = 1
	w.Player().Vel.X = -48

	e.Tick(w, core.NewInputFrame(core.ActionMoveLeft, core.ActionRun), true)

	assert.Equal(t, uint16(0), w.Player().Pos.X)
	assert.Equal(t, int16(0), w.Player().Vel.X)
}

func TestRightEdgeClampsPlayer(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).floor(0, 30).build(), actor.Pos{X: 16, Y: floorTop})
	e := New()
	settle(e, w)
	limit := uint16(w.LevelWidth() - 16)
	w.Player().Pos.X = limit - 1
	w.Player().Vel.X = 48

	e.Tick(w, core.NewInputFrame(core.ActionMoveRight, core.ActionRun), true)

	assert.Equal(t, limit, w.Player().Pos.X)
	assert.Equal(t, int16(0), w.Player().Vel.X)
}

func TestGroundedPlayerStopsAtWall(t *testing.T) {
	g := newGridBuilder(30).floor(0, 30).solid(5, 2).solid(5, 3).build()
	w := newTestWorld(g, actor.Pos{X: 64, Y: floorTop})
	e := New()
	settle(e, w)
	require.Equal(t, uint16(64), w.Player().Pos.X)
	w.Player().Vel.X = 48

	e.Tick(w, core.NewInputFrame(core.ActionMoveRight, core.ActionRun), true)

	p := w.Player()
	assert.Equal(t, uint16(64), p.Pos.X, "snapped back to the tile edge")
	assert.Equal(t, uint16(floorTop), p.Pos.Y, "wall hit never moves the player up")
	assert.Equal(t, int16(0), p.Vel.X)
	assert.True(t, e.Grounded())
}

func TestIgnoresInputWithoutFocus(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).floor(0, 30).build(), actor.Pos{X: 64, Y: floorTop})
	e := New()
	settle(e, w)

	for i := 0; i < 10; i++ {
		e.Tick(w, core.NewInputFrame(core.ActionMoveRight, core.ActionJump), false)
	}

	assert.Equal(t, uint16(64), w.Player().Pos.X)
	assert.Equal(t, int16(0), w.Player().Vel.X)
	assert.True(t, e.Grounded())
}

func TestAirborneKeepsMomentumWithoutInput(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).build(), actor.Pos{X: 64, Y: 150})
	e := New()
	w.Player().Vel.X = 24

	e.Tick(w, 0, true)

	assert.False(t, e.Grounded())
	assert.Equal(t, int16(24), w.Player().Vel.X)
}

func TestGroundedDeceleratesWithoutInput(t *testing.T) {
	w := newTestWorld(newGridBuilder(30).floor(0, 30).build(), actor.Pos{X: 64, Y: floorTop})
	e := New()
	settle(e, w)
	require.True(t, e.Grounded())
	w.Player().Vel.X = 24

	e.Tick(w, 0, true)

	assert.Equal(t, int16(24-w.Physics.AccelX), w.Player().Vel.X)
}

func TestFallingCornerUnderLedgeIsWallHit(t *testing.T) {
	// Right corner sits in a solid tile with another solid tile above it.
	g := newGridBuilder(30).solid(6, 4).solid(6, 5).build()
	w := newTestWorld(g, actor.Pos{X: 90, Y: 70})
	e := New()

	e.Tick(w, 0, true)

	p := w.Player()
	assert.Equal(t, uint16(80), p.Pos.X, "snapped left to the tile edge")
	assert.Equal(t, uint16(70), p.Pos.Y)
	assert.Equal(t, int16(0), p.Vel.X)
	assert.False(t, e.Grounded())
}

func TestFallingAfterJumpOntoOpenCornerIsFloorHit(t *testing.T) {
	// Nothing above either corner, the jump was held and the Player is falling.
	g := newGridBuilder(30).solid(6, 4).build()
	w := newTestWorld(g, actor.Pos{X: 90, Y: 70})
	w.Player().Vel.Y = -16
	e := New()
	e.hold = 5

	e.Tick(w, 0, true)

	p := w.Player()
	assert.Equal(t, uint16(90), p.Pos.X)
	assert.Equal(t, uint16(5*testTile), p.Pos.Y, "lifted onto the tile row")
	assert.True(t, e.Grounded())
}

func TestWalkCycleAndFacing(t *testing.T) {
	w := newTestWorld(newGridBuilder(40).floor(0, 40).build(), actor.Pos{X: 16, Y: floorTop})
	e := New()
	settle(e, w)

	seen := map[int8]bool{}
	for i := 0; i < 60; i++ {
		e.Tick(w, core.NewInputFrame(core.ActionMoveRight), true)
		seen[w.Player().Anim.Code()] = true
	}
	assert.Equal(t, map[int8]bool{0: true, 1: true}, seen, "walking right alternates frames 0 and 1")

	for i := 0; i < 60; i++ {
		e.Tick(w, core.NewInputFrame(core.ActionMoveLeft), true)
	}
	code := w.Player().Anim.Code()
	assert.True(t, code == -1 || code == -2, "walking left uses mirrored walk frames, got %d", code)

	for i := 0; i < 40; i++ {
		e.Tick(w, 0, true)
	}
	assert.Equal(t, int8(-1), w.Player().Anim.Code(), "stopping keeps the mirrored stance")
}

func TestInertSpeciesIsUntouched(t *testing.T) {
	odd := actor.Actor{Pos: actor.Pos{X: 90, Y: 120}, Species: actor.Species(9), Vel: actor.Vel{X: 5}}
	w := newTestWorld(newGridBuilder(30).floor(0, 30).build(), actor.Pos{X: 16, Y: floorTop}, odd)
	e := New()

	e.Tick(w, 0, true)

	assert.Equal(t, odd, w.Actors.Secondary[0])
	assert.IsType(t, Inert{}, e.Behaviors().For(actor.Species(9)))
}
