package object

import (
	"fmt"

	"github.com/tomz197/invaders/internal/physics"
)

// Bunker dimensions and durability.
const (
	BunkerWidth  = 36.0
	BunkerHeight = 24.0
	BunkerHP     = 10
)

// Bunker is a destructible shield between the cannon and the aliens.
type Bunker struct {
	HP        int
	collider  *physics.Collider
	destroyed bool
}

// NewBunker creates a full-strength bunker centered at center.
func NewBunker(center physics.Vector) *Bunker {
	return &Bunker{
		HP:       BunkerHP,
		collider: colliderFor(center, BunkerWidth, BunkerHeight, physics.Bunker),
	}
}

// Collider returns the bunker's collider.
func (b *Bunker) Collider() *physics.Collider {
	return b.collider
}

// Center returns the bunker's center position.
func (b *Bunker) Center() physics.Vector {
	return b.collider.Center()
}

// Hit takes one hit point and reports whether the bunker is now destroyed.
func (b *Bunker) Hit() bool {
	if b.HP > 0 {
		b.HP--
	}
	if b.HP == 0 {
		b.destroyed = true
	}
	return b.destroyed
}

// Update is a no-op until the bunker is destroyed.
func (b *Bunker) Update(_ UpdateContext) (bool, error) {
	return b.destroyed, nil
}

// Draw renders the bunker with its remaining hit points above it.
func (b *Bunker) Draw(ctx DrawContext) error {
	c := b.Center()
	bunkerSprite.draw(ctx.Canvas, c, BunkerWidth, BunkerHeight)
	drawCollider(ctx, b.collider)

	if ctx.Writer != nil {
		col, row := ctx.Canvas.LogicalToTerminal(c.X, c.Y-BunkerHeight/2-8)
		ctx.Writer.WriteCentered(col, row, fmt.Sprintf("%d", b.HP))
	}
	return nil
}

// MarkDestroyed marks the bunker for removal.
func (b *Bunker) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bunker is marked for destruction.
func (b *Bunker) IsDestroyed() bool {
	return b.destroyed
}
