// Package object defines the game entities and the contexts they are
// updated and drawn with.
package object

import (
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// Playfield is the logical size of the game area. Objects position
// themselves in these units; the canvas scales them to the terminal.
type Playfield struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	Field   Playfield
	Spawner Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas      // Scaled half-block canvas
	Writer *draw.ChunkWriter // Text overlay (labels)
	Debug  bool              // Draw collider outlines
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

// Collidable is implemented by objects that take part in collision detection.
type Collidable interface {
	Collider() *physics.Collider
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on the next sweep.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// ShouldRenderBlink returns true if an object with remaining flash time
// should be rendered this frame. Always true once remainingTime <= 0.
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}

// drawCollider outlines a collider's circle in debug mode.
func drawCollider(ctx DrawContext, c *physics.Collider) {
	if !ctx.Debug || c == nil {
		return
	}
	center := c.Center()
	ctx.Canvas.DrawCircle(draw.Point{X: center.X, Y: center.Y}, c.Radius(), false)
}

// colliderFor builds a collider whose circle encloses a w×h sprite.
func colliderFor(center physics.Vector, w, h float64, category physics.Category) *physics.Collider {
	return physics.NewCollider(physics.MustCircle(center, max(w, h)/2), physics.Vector{}, category)
}
