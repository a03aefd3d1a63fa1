package actor

// Store owns the Player and a fixed-capacity pool of secondary actors.
// Slots are reused in place and never compacted; a Null slot is free.
type Store struct {
	Player    Actor
	Secondary []Actor

	initial []Actor
}

// NewStore builds a store from the level's starting actors. The slice is
// copied twice: once for play and once as the immutable respawn snapshot.
func NewStore(player Actor, secondaries []Actor) *Store {
	s := &Store{
		Player:    player,
		Secondary: make([]Actor, len(secondaries)),
		initial:   make([]Actor, len(secondaries)),
	}
	copy(s.Secondary, secondaries)
	copy(s.initial, secondaries)
	return s
}

// Respawn moves the Player to spawn and restores every secondary slot from
// the snapshot. The Player's velocity and animation are left alone.
func (s *Store) Respawn(spawn Pos) {
	s.Player.Pos = spawn
	copy(s.Secondary, s.initial)
}

// Initial returns the snapshot entry for slot i.
func (s *Store) Initial(i int) Actor {
	return s.initial[i]
}

// Capacity returns the number of secondary slots.
func (s *Store) Capacity() int {
	return len(s.Secondary)
}

// Live counts non-Null secondary actors.
func (s *Store) Live() int {
	n := 0
	for i := range s.Secondary {
		if s.Secondary[i].Active() {
			n++
		}
	}
	return n
}
