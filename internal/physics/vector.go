// Package physics provides the 2D geometry and broad-phase collision detection
// used by the game: vectors, circles, tagged colliders and a per-tick quadtree.
package physics

import "math"

// Vector is a 2D point or displacement. It is a plain value; vectors with equal
// components are interchangeable.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Distance returns the Euclidean distance between v and o.
func (v Vector) Distance(o Vector) float64 {
	return math.Sqrt(v.DistanceSquared(o))
}

// DistanceSquared returns the squared distance between v and o.
// Use this when comparing distances to avoid the sqrt cost.
func (v Vector) DistanceSquared(o Vector) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return dx*dx + dy*dy
}

func (v Vector) finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
