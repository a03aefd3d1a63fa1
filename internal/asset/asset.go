// Package asset decodes the packed on-disk formats: tile-bit level layouts,
// palette-indexed images, mold headers and text actor placements. Every
// decoder is a pure function over a byte slice; reading files is left to the
// caller.
package asset

import "errors"

var (
	// ErrTruncated is returned when input ends before the declared content.
	ErrTruncated = errors.New("asset: data truncated")
	// ErrNoPalette is returned for an image declaring zero colors.
	ErrNoPalette = errors.New("asset: image has no palette")
	// ErrBadColorCode is returned when a pixel references a missing palette entry.
	ErrBadColorCode = errors.New("asset: color code outside palette")
	// ErrBadCharacter is returned for a byte that cannot appear in actor placements.
	ErrBadCharacter = errors.New("asset: bad character")
	// ErrUnmatchedBracket is returned when braces in actor placements do not pair up.
	ErrUnmatchedBracket = errors.New("asset: unmatched bracket")
	// ErrMemberMismatch is returned when an actor entry is missing members.
	ErrMemberMismatch = errors.New("asset: actor member mismatch")
	// ErrCountMismatch is returned when the declared actor count is wrong.
	ErrCountMismatch = errors.New("asset: actor count mismatch")
	// ErrOutOfRange is returned for a number too large for its field.
	ErrOutOfRange = errors.New("asset: number out of range")
)

// bitReader reads MSB-first codes that may straddle byte boundaries.
type bitReader struct {
	data []byte
	pos  int // bit position
}

func (r *bitReader) remaining() int {
	return len(r.data)*8 - r.pos
}

func (r *bitReader) read(bits int) (uint32, bool) {
	if r.remaining() < bits {
		return 0, false
	}
	var v uint32
	for i := 0; i < bits; i++ {
		b := r.data[r.pos>>3] >> (7 - uint(r.pos&7)) & 1
		v = v<<1 | uint32(b)
		r.pos++
	}
	return v, true
}
