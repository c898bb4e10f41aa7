package physics

// Category tags a collider with the kind of entity that owns it.
// Pair handlers switch on it; it carries no behaviour of its own.
type Category int

const (
	Alien Category = iota
	Bullet
	Bunker
	Cannon
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Alien:
		return "alien"
	case Bullet:
		return "bullet"
	case Bunker:
		return "bunker"
	case Cannon:
		return "cannon"
	default:
		return "unknown"
	}
}

// Collider is the unit that takes part in collision detection: a circle,
// an informational velocity and an immutable category.
//
// The owning entity is the source of truth for position and must call Move
// whenever it moves so the shape never drifts out of sync.
type Collider struct {
	shape    Circle
	velocity Vector
	category Category
}

// NewCollider creates a collider. The shape is expected to come from NewCircle.
func NewCollider(shape Circle, velocity Vector, category Category) *Collider {
	return &Collider{
		shape:    shape,
		velocity: velocity,
		category: category,
	}
}

// Move translates the collider's shape in place.
func (c *Collider) Move(delta Vector) {
	c.shape = c.shape.Translate(delta)
}

// InBounds reports whether the collider's center lies inside the rectangle
// spanned by the two corners. Corners may be given in either orientation.
// Only the center is tested, not the whole circle.
func (c *Collider) InBounds(a, b Vector) bool {
	return NewRect(a, b).Contains(c.shape.Center)
}

// Shape returns the current circle.
func (c *Collider) Shape() Circle {
	return c.shape
}

// Center returns the current circle center.
func (c *Collider) Center() Vector {
	return c.shape.Center
}

// Radius returns the circle radius.
func (c *Collider) Radius() float64 {
	return c.shape.Radius
}

// Velocity returns the stored velocity.
func (c *Collider) Velocity() Vector {
	return c.velocity
}

// Category returns the collider's tag.
func (c *Collider) Category() Category {
	return c.category
}
