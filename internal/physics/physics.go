// Package physics provides collision detection on integer pixel rectangles.
package physics

// Rect is an axis-aligned rectangle in pixel space. X, Y is the top-left pixel.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the x of the last covered column.
func (r Rect) Right() int {
	return r.X + r.W - 1
}

// Bottom returns the y of the last covered row.
func (r Rect) Bottom() int {
	return r.Y + r.H - 1
}

// Overlaps reports whether a and b share at least one pixel.
// Bounds are inclusive: rectangles touching along a shared edge pixel overlap.
func Overlaps(a, b Rect) bool {
	return a.Y <= b.Bottom() &&
		a.Bottom() >= b.Y &&
		a.X <= b.Right() &&
		a.Right() >= b.X
}

// Clip returns the part of r that lies inside bounds.
// The result is Empty when they do not intersect.
func Clip(r, bounds Rect) Rect {
	x0 := max(r.X, bounds.X)
	y0 := max(r.Y, bounds.Y)
	x1 := min(r.X+r.W, bounds.X+bounds.W)
	y1 := min(r.Y+r.H, bounds.Y+bounds.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
