package engine

import "github.com/jws412/Facade/internal/actor"

// Behavior is what a species does each tick and what happens to it when it
// scrolls out of view.
type Behavior interface {
	Step(e *Engine, w *World, a *actor.Actor)
	Offscreen(w *World, a *actor.Actor)
}

// Inert is the Behavior of species without programmed logic.
type Inert struct{}

// Step does nothing.
func (Inert) Step(*Engine, *World, *actor.Actor) {}

// Offscreen does nothing.
func (Inert) Offscreen(*World, *actor.Actor) {}

// Behaviors dispatches by species. Unregistered species are Inert.
type Behaviors struct {
	table [256]Behavior
}

// DefaultBehaviors returns a table with every built-in species registered.
func DefaultBehaviors() *Behaviors {
	b := &Behaviors{}
	b.Register(actor.Bug, Bug{})
	return b
}

// Register installs the behavior for s.
func (b *Behaviors) Register(s actor.Species, bh Behavior) {
	b.table[s] = bh
}

// For returns the behavior for s.
func (b *Behaviors) For(s actor.Species) Behavior {
	if bh := b.table[s]; bh != nil {
		return bh
	}
	return Inert{}
}
