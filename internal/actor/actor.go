// Package actor holds the Player, the fixed pool of secondary actors and the
// snapshot used to put the pool back the way the level started.
package actor

// Species selects an actor's mold and behavior.
type Species uint8

const (
	Player Species = 0
	Bug    Species = 1
	Null   Species = 255 // Free slot; skipped by simulation and drawing
)

// String returns a human-readable name for the species.
func (s Species) String() string {
	switch s {
	case Player:
		return "player"
	case Bug:
		return "bug"
	case Null:
		return "null"
	default:
		return "unknown"
	}
}

// ParseSpecies maps a name from String back to its species.
func ParseSpecies(name string) (Species, bool) {
	switch name {
	case "player":
		return Player, true
	case "bug":
		return Bug, true
	case "null":
		return Null, true
	}
	return Null, false
}

// Pos is a pixel position. Coordinates are unsigned on purpose: moving below
// zero wraps to a huge value, which the engine reads as "fell off".
type Pos struct {
	X, Y uint16
}

// Vel is a velocity in sub-pixel units; the engine divides by its speed
// denominator to get whole pixels.
type Vel struct {
	X, Y int16
}

// Anim is an animation frame magnitude plus a facing flag. Its raw code is
// Mag when facing right and ^Mag (-Mag-1) when mirrored, so the two never
// collide and complementing the code flips facing while keeping the frame.
type Anim struct {
	Mag      uint8
	Mirrored bool
}

// AnimFromCode decodes a raw signed code.
func AnimFromCode(code int8) Anim {
	if code < 0 {
		return Anim{Mag: uint8(^code), Mirrored: true}
	}
	return Anim{Mag: uint8(code)}
}

// Code returns the raw signed code.
func (a Anim) Code() int8 {
	if a.Mirrored {
		return ^int8(a.Mag)
	}
	return int8(a.Mag)
}

// Flip returns the same frame facing the other way.
func (a Anim) Flip() Anim {
	return Anim{Mag: a.Mag, Mirrored: !a.Mirrored}
}

// Actor is one simulated entity.
type Actor struct {
	Pos     Pos
	Vel     Vel
	Species Species
	Anim    Anim
}

// Active reports whether the slot holds a live actor.
func (a *Actor) Active() bool {
	return a.Species != Null
}

// Despawn frees the slot.
func (a *Actor) Despawn() {
	a.Species = Null
}
