package asset

import (
	"fmt"
	"math"

	"github.com/jws412/Facade/internal/actor"
)

// ParseActors parses a text actor placement list:
//
//	# comment to end of line
//	2
//	{ 1 120 32 }
//	{ 1 400 48 }
//
// The first number is the actor count, then one species/x/y triple per
// actor. Whitespace and braces separate numbers; braces must pair up but
// are otherwise free-form. Every actor starts facing left.
func ParseActors(data []byte) ([]actor.Actor, error) {
	var (
		nums   []int
		num    int
		inNum  bool
		depth  int
		line   = 1
		inNote bool
	)
	flush := func() {
		if inNum {
			nums = append(nums, num)
			num, inNum = 0, false
		}
	}

	for _, c := range data {
		if inNote {
			if c == '\n' {
				inNote = false
				line++
			}
			continue
		}
		switch {
		case c >= '0' && c <= '9':
			num = num*10 + int(c-'0')
			if num > math.MaxUint16 {
				return nil, fmt.Errorf("line %d: %w", line, ErrOutOfRange)
			}
			inNum = true
		case c == '#':
			flush()
			inNote = true
		case c == '{':
			flush()
			depth++
		case c == '}':
			flush()
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("line %d: %w", line, ErrUnmatchedBracket)
			}
		case c == ' ' || c == '\t' || c == '\r':
			flush()
		case c == '\n':
			flush()
			line++
		default:
			return nil, fmt.Errorf("line %d: %q: %w", line, c, ErrBadCharacter)
		}
	}
	flush()

	if depth != 0 {
		return nil, ErrUnmatchedBracket
	}
	if len(nums) == 0 {
		return nil, nil
	}

	count, members := nums[0], nums[1:]
	if len(members)%3 != 0 {
		return nil, fmt.Errorf("%d trailing numbers: %w", len(members)%3, ErrMemberMismatch)
	}
	if len(members)/3 != count {
		return nil, fmt.Errorf("declared %d, found %d: %w", count, len(members)/3, ErrCountMismatch)
	}

	out := make([]actor.Actor, 0, count)
	for i := 0; i < len(members); i += 3 {
		id := members[i]
		if id > math.MaxUint8 {
			return nil, fmt.Errorf("actor %d species %d: %w", i/3, id, ErrOutOfRange)
		}
		out = append(out, actor.Actor{
			Pos:     actor.Pos{X: uint16(members[i+1]), Y: uint16(members[i+2])},
			Species: actor.Species(id),
			Anim:    actor.Anim{Mirrored: true},
		})
	}
	return out, nil
}
