package engine

import "math"

// Physics holds the integer tuning constants shared by every species.
// Velocities are in 1/SpeedDenominator pixels per tick.
type Physics struct {
	SpeedDenominator int   // Sub-pixel units per pixel
	AccelX           int   // Horizontal acceleration per tick
	AccelY           int   // Gravity per tick
	LaunchSpeed      int   // Jump velocity and terminal fall speed
	MaxJumpHold      int   // Ticks a held jump keeps launching
	WalkDivisor      int   // Max speed is divided by this without Run
	AnimPeriod       int   // Pixels walked between walk frames
	OffscreenMag     uint8 // Animation magnitude parking an off-screen actor
}

// DefaultPhysics returns the stock tuning.
func DefaultPhysics() Physics {
	return Physics{
		SpeedDenominator: 16,
		AccelX:           2,
		AccelY:           4,
		LaunchSpeed:      48,
		MaxJumpHold:      14,
		WalkDivisor:      2,
		AnimPeriod:       10,
		OffscreenMag:     4,
	}
}

// offscreenCode is the raw animation code of the right-facing sentinel.
func (p Physics) offscreenCode() int8 {
	return int8(p.OffscreenMag)
}

// wrapped reports whether an unsigned coordinate has gone below zero by at
// most |threshold| pixels this tick, i.e. it sits within |threshold| of the
// top of the uint16 range.
func wrapped(threshold int, n uint16) bool {
	if threshold < 0 {
		threshold = -threshold
	}
	return int(n) >= math.MaxUint16-threshold
}

// approach moves v one step of size accel toward target.
func approach(v, target, accel int) int {
	switch {
	case v < target:
		return v + accel
	case v > target:
		return v - accel
	}
	return v
}
