package asset

import (
	"fmt"

	"github.com/jws412/Facade/internal/sprite"
)

// MoldHeaderSize is the length of an encoded mold header.
const MoldHeaderSize = 4

// DecodeMold decodes a mold header (width, height, max horizontal speed and
// frame count, one byte each) and the palette image holding its frames.
func DecodeMold(header, image []byte) (*sprite.Mold, error) {
	if len(header) < MoldHeaderSize {
		return nil, fmt.Errorf("mold header: %w", ErrTruncated)
	}
	m := &sprite.Mold{
		W:         int(header[0]),
		H:         int(header[1]),
		MaxSpeedX: int(header[2]),
		Frames:    int(header[3]),
	}
	pix, _, err := DecodeImage(image, m.W*m.H*m.Frames)
	if err != nil {
		return nil, fmt.Errorf("mold frames: %w", err)
	}
	m.Pix = pix
	return m, nil
}
