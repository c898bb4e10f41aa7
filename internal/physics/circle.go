package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when a shape cannot be built from its parameters.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Circle is the bounding shape of every collider.
type Circle struct {
	Center Vector
	Radius float64
}

// NewCircle creates a circle. The radius must be positive and the center finite.
func NewCircle(center Vector, radius float64) (Circle, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Circle{}, fmt.Errorf("%w: circle radius %v", ErrInvalidGeometry, radius)
	}
	if !center.finite() {
		return Circle{}, fmt.Errorf("%w: circle center %v", ErrInvalidGeometry, center)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// MustCircle is like NewCircle but panics on invalid geometry.
// Intended for sizes that are compile-time constants.
func MustCircle(center Vector, radius float64) Circle {
	c, err := NewCircle(center, radius)
	if err != nil {
		panic(err)
	}
	return c
}

// Overlaps reports whether the two circles touch or intersect.
func (c Circle) Overlaps(o Circle) bool {
	minDist := c.Radius + o.Radius
	return c.Center.DistanceSquared(o.Center) <= minDist*minDist
}

// Translate returns the circle moved by delta.
func (c Circle) Translate(delta Vector) Circle {
	return Circle{Center: c.Center.Add(delta), Radius: c.Radius}
}

// Bounds returns the axis-aligned bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		Min: Vector{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Vector{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}
