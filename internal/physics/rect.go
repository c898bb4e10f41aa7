package physics

import "math"

// Rect is an axis-aligned rectangle with Min <= Max on both axes.
type Rect struct {
	Min, Max Vector
}

// NewRect builds a rectangle from two opposite corners given in any orientation.
// Each axis is normalized to (min, max), so inverted corners are never an error.
func NewRect(a, b Vector) Rect {
	return Rect{
		Min: Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector {
	return Vector{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and o share at least one point, edges included.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vector{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: Vector{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Quadrants splits r into four equal parts: top-left, top-right, bottom-left,
// bottom-right (Y grows downward). Neighbouring quadrants share their seam.
func (r Rect) Quadrants() [4]Rect {
	c := r.Center()
	return [4]Rect{
		{Min: r.Min, Max: c},
		{Min: Vector{X: c.X, Y: r.Min.Y}, Max: Vector{X: r.Max.X, Y: c.Y}},
		{Min: Vector{X: r.Min.X, Y: c.Y}, Max: Vector{X: c.X, Y: r.Max.Y}},
		{Min: c, Max: r.Max},
	}
}
