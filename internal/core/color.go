package core

// Pixel is a packed 0xAARRGGBB value as stored in the framebuffer and in
// every sprite and tile image.
type Pixel uint32

// Transparent is the reserved color key. Blits skip any source pixel equal
// to it; nothing else about a pixel's alpha channel is interpreted.
const Transparent Pixel = 0x00E000C0

// RGB packs 8-bit channels into a Pixel with a zero alpha byte, which is how
// decoded palettes store colors.
func RGB(r, g, b uint8) Pixel {
	return Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// Lerp blends from a toward b by num/den, channel by channel.
func Lerp(a, b Pixel, num, den int) Pixel {
	if den <= 0 {
		return a
	}
	mix := func(x, y uint8) uint8 {
		return uint8(int(x) + (int(y)-int(x))*num/den)
	}
	return RGB(mix(a.R(), b.R()), mix(a.G(), b.G()), mix(a.B(), b.B()))
}
