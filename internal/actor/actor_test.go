package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimComplementEncoding(t *testing.T) {
	for mag := uint8(0); mag <= 3; mag++ {
		right := Anim{Mag: mag}
		left := right.Flip()

		assert.Equal(t, int8(mag), right.Code())
		assert.Equal(t, -int8(mag)-1, left.Code())
		assert.Equal(t, ^right.Code(), left.Code(), "mirror is the bitwise complement")
		assert.Equal(t, right, AnimFromCode(right.Code()))
		assert.Equal(t, left, AnimFromCode(left.Code()))
	}
}

func TestAnimCodesNeverCollide(t *testing.T) {
	seen := map[int8]Anim{}
	for mag := uint8(0); mag <= 3; mag++ {
		for _, a := range []Anim{{Mag: mag}, {Mag: mag, Mirrored: true}} {
			prev, dup := seen[a.Code()]
			require.False(t, dup, "code %d shared by %+v and %+v", a.Code(), prev, a)
			seen[a.Code()] = a
		}
	}
}

func TestSpeciesString(t *testing.T) {
	assert.Equal(t, "player", Player.String())
	assert.Equal(t, "bug", Bug.String())
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "unknown", Species(7).String())
}

func TestStoreRespawnIsIdempotent(t *testing.T) {
	start := []Actor{
		{Pos: Pos{X: 64, Y: 32}, Species: Bug, Anim: Anim{Mirrored: true}},
		{Pos: Pos{X: 128, Y: 32}, Species: Bug, Anim: Anim{Mirrored: true}},
	}
	s := NewStore(Actor{Species: Player}, start)

	// Mutate everything the simulation could touch.
	s.Secondary[0].Despawn()
	s.Secondary[1].Pos.X = 7
	s.Secondary[1].Anim = Anim{Mag: 2}
	s.Player.Pos = Pos{X: 999, Y: 1}
	s.Player.Vel = Vel{X: 5}

	spawn := Pos{X: 16, Y: 48}
	s.Respawn(spawn)
	first := append([]Actor(nil), s.Secondary...)
	firstPlayer := s.Player

	s.Respawn(spawn)
	assert.Equal(t, first, s.Secondary)
	assert.Equal(t, firstPlayer, s.Player)

	assert.Equal(t, start, s.Secondary)
	assert.Equal(t, spawn, s.Player.Pos)
	assert.Equal(t, Vel{X: 5}, s.Player.Vel, "respawn keeps player velocity")
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	start := []Actor{{Species: Bug}}
	s := NewStore(Actor{}, start)
	start[0].Species = Null

	assert.Equal(t, Bug, s.Secondary[0].Species)
	assert.Equal(t, Bug, s.Initial(0).Species)
	assert.Equal(t, 1, s.Capacity())
	assert.Equal(t, 1, s.Live())

	s.Secondary[0].Despawn()
	assert.Equal(t, 0, s.Live())
	assert.Equal(t, Bug, s.Initial(0).Species)
}

func TestParseSpecies(t *testing.T) {
	for _, s := range []Species{Player, Bug, Null} {
		got, ok := ParseSpecies(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseSpecies("dragon")
	assert.False(t, ok)
}
