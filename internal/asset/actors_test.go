package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jws412/Facade/internal/actor"
)

func TestParseActors(t *testing.T) {
	src := `# placements for the first level
2 # two bugs
{ 1 120 32 }
{1	400
 48}
`
	actors, err := ParseActors([]byte(src))
	require.NoError(t, err)
	require.Len(t, actors, 2)

	assert.Equal(t, actor.Actor{
		Pos:     actor.Pos{X: 120, Y: 32},
		Species: actor.Bug,
		Anim:    actor.Anim{Mirrored: true},
	}, actors[0])
	assert.Equal(t, actor.Pos{X: 400, Y: 48}, actors[1].Pos)
	assert.Equal(t, int8(-1), actors[1].Anim.Code())
}

func TestParseActorsEmpty(t *testing.T) {
	actors, err := ParseActors([]byte("# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, actors)

	actors, err = ParseActors([]byte("0\n"))
	require.NoError(t, err)
	assert.Empty(t, actors)
}

func TestParseActorsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"letter", "1 {1 2 x}", ErrBadCharacter},
		{"negative sign", "1 {1 -2 3}", ErrBadCharacter},
		{"close before open", "1 }1 2 3{", ErrUnmatchedBracket},
		{"unclosed", "1 {1 2 3", ErrUnmatchedBracket},
		{"missing member", "1 {1 2}", ErrMemberMismatch},
		{"too few actors", "2 {1 2 3}", ErrCountMismatch},
		{"too many actors", "0 {1 2 3}", ErrCountMismatch},
		{"coordinate overflow", "1 {1 70000 3}", ErrOutOfRange},
		{"species overflow", "1 {300 2 3}", ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseActors([]byte(tc.src))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
