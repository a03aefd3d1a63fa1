// Package core provides fundamental types shared by the simulation and the
// platform layer: geometry helpers, input snapshots, pixels and the framebuffer.
// It contains no external dependencies (especially no Bubble Tea) so the
// engine and compositor stay pure and testable.
package core

// Rect represents an axis-aligned bounding box used for contact tests.
// Y grows upward in world space, so Bottom is the far edge from the origin row.
type Rect struct {
	X, Y int // Origin corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// OverlapsX reports whether the horizontal extents of r and other overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right()
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
