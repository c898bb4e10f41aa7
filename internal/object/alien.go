package object

import (
	"github.com/tomz197/invaders/internal/physics"
)

// AlienKind selects an alien's sprite and size.
type AlienKind int

const (
	AlienRed AlienKind = iota
	AlienGreen
	AlienBlue
)

// alienFrameSeconds is how long each idle animation frame is shown (2 Hz).
const alienFrameSeconds = 0.5

// String returns the kind's name.
func (k AlienKind) String() string {
	switch k {
	case AlienRed:
		return "red"
	case AlienGreen:
		return "green"
	case AlienBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Size returns the sprite size in logical units.
func (k AlienKind) Size() (w, h float64) {
	switch k {
	case AlienGreen:
		return 24, 16
	case AlienBlue:
		return 22, 16
	default:
		return 16, 16
	}
}

func (k AlienKind) frames() [2]sprite {
	switch k {
	case AlienGreen:
		return greenFrames
	case AlienBlue:
		return blueFrames
	default:
		return redFrames
	}
}

// Alien is one invader of the marching grid. The level moves it with Step;
// Update only advances its animation.
type Alien struct {
	Kind      AlienKind
	Column    int // grid column, used to find each column's bottom alien
	collider  *physics.Collider
	frame     int
	animTimer float64
	destroyed bool
}

// NewAlien creates an alien of the given kind centered at center.
func NewAlien(kind AlienKind, column int, center physics.Vector) *Alien {
	w, h := kind.Size()
	return &Alien{
		Kind:     kind,
		Column:   column,
		collider: colliderFor(center, w, h, physics.Alien),
	}
}

// Collider returns the alien's collider.
func (a *Alien) Collider() *physics.Collider {
	return a.collider
}

// Center returns the alien's center position.
func (a *Alien) Center() physics.Vector {
	return a.collider.Center()
}

// Step moves the alien by delta.
func (a *Alien) Step(delta physics.Vector) {
	a.collider.Move(delta)
}

// Frame returns the current animation frame (0 or 1).
func (a *Alien) Frame() int {
	return a.frame
}

// Update advances the idle animation.
func (a *Alien) Update(ctx UpdateContext) (bool, error) {
	if a.destroyed {
		return true, nil
	}

	a.animTimer += ctx.Delta.Seconds()
	for a.animTimer >= alienFrameSeconds {
		a.animTimer -= alienFrameSeconds
		a.frame = 1 - a.frame
	}
	return false, nil
}

// Draw renders the current animation frame.
func (a *Alien) Draw(ctx DrawContext) error {
	w, h := a.Kind.Size()
	a.Kind.frames()[a.Frame()].draw(ctx.Canvas, a.Center(), w, h)
	drawCollider(ctx, a.collider)
	return nil
}

// MarkDestroyed marks the alien for removal.
func (a *Alien) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the alien is marked for destruction.
func (a *Alien) IsDestroyed() bool {
	return a.destroyed
}
