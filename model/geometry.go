package model

import "math"

// Rect represents a rectangular page region in top-origin page coordinates:
// X0/Top is the upper-left corner, X1/Bottom the lower-right, with Y
// increasing downward. This matches the coordinates reported by table
// detection.
type Rect struct {
	X0     float64
	Top    float64
	X1     float64
	Bottom float64
}

// NewRect creates a rect, normalizing swapped corners
func NewRect(x0, top, x1, bottom float64) Rect {
	return Rect{
		X0:     math.Min(x0, x1),
		Top:    math.Min(top, bottom),
		X1:     math.Max(x0, x1),
		Bottom: math.Max(top, bottom),
	}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rect has no area
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains checks if a point is inside the rect
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Top && y <= r.Bottom
}

// Intersects checks if two rects overlap
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 ||
		r.X0 > other.X1 ||
		r.Bottom < other.Top ||
		r.Top > other.Bottom)
}

// Intersect returns the overlapping region of two rects. The result is
// empty when they do not intersect.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		X0:     math.Max(r.X0, other.X0),
		Top:    math.Max(r.Top, other.Top),
		X1:     math.Min(r.X1, other.X1),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Union returns the smallest rect containing both rects
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0:     math.Min(r.X0, other.X0),
		Top:    math.Min(r.Top, other.Top),
		X1:     math.Max(r.X1, other.X1),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}
