package core

import "image"

// Framebuffer is a flat row-major pixel buffer. Row 0 is the bottom row of
// the picture, matching how level and sprite images are stored, so callers
// that need a top-down image go through Image.
type Framebuffer struct {
	width  int
	height int
	Pix    []Pixel
}

// NewFramebuffer allocates a framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Clear fills the whole buffer with zero (black).
func (f *Framebuffer) Clear() {
	f.Fill(0)
}

// Fill sets every pixel to p.
func (f *Framebuffer) Fill(p Pixel) {
	for i := range f.Pix {
		f.Pix[i] = p
	}
}

// CopyFrom copies src into the buffer. A shorter src leaves the tail as is.
func (f *Framebuffer) CopyFrom(src []Pixel) {
	copy(f.Pix, src)
}

// Set writes a pixel at (x, y), y counted from the bottom.
// Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) Set(x, y int, p Pixel) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.Pix[y*f.width+x] = p
}

// Get returns the pixel at (x, y). Out of bounds reads return zero.
func (f *Framebuffer) Get(x, y int) Pixel {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.Pix[y*f.width+x]
}

// Image converts the buffer into a top-down, fully opaque RGBA image.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		row := f.height - 1 - y
		for x := 0; x < f.width; x++ {
			p := f.Pix[y*f.width+x]
			o := img.PixOffset(x, row)
			img.Pix[o] = p.R()
			img.Pix[o+1] = p.G()
			img.Pix[o+2] = p.B()
			img.Pix[o+3] = 0xFF
		}
	}
	return img
}
