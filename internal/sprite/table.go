package sprite

import "github.com/jws412/Facade/internal/actor"

// Table maps species to molds. It is a fixed array so lookups during a tick
// never touch a map.
type Table struct {
	molds [256]*Mold
}

// NewTable creates an empty mold table.
func NewTable() *Table {
	return &Table{}
}

// Register installs m for species s, replacing any previous mold.
func (t *Table) Register(s actor.Species, m *Mold) {
	t.molds[s] = m
}

// For returns the mold registered for s.
func (t *Table) For(s actor.Species) (*Mold, bool) {
	m := t.molds[s]
	return m, m != nil
}

// MustFor returns the mold for s and panics when none is registered.
// Levels are validated on load, so a miss here is a programming error.
func (t *Table) MustFor(s actor.Species) *Mold {
	m := t.molds[s]
	if m == nil {
		panic("sprite: no mold registered for species " + s.String())
	}
	return m
}
