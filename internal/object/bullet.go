package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

// BulletRadius is the collision and draw radius of every bullet.
const BulletRadius = 4.0

// Bullet cull limits: a bullet is removed once its center leaves
// [bulletTopLimit, bulletBottomFraction*height].
const (
	bulletTopLimit       = 20.0
	bulletBottomFraction = 0.9
)

// Bullet travels vertically. Negative speed moves up (player shots),
// positive speed moves down (alien shots).
type Bullet struct {
	Speed     float64 // logical units per second
	collider  *physics.Collider
	destroyed bool
}

// NewBullet creates a bullet centered at center.
func NewBullet(center physics.Vector, speed float64) *Bullet {
	return &Bullet{
		Speed:    speed,
		collider: physics.NewCollider(physics.MustCircle(center, BulletRadius), physics.Vec(0, speed), physics.Bullet),
	}
}

// Collider returns the bullet's collider.
func (b *Bullet) Collider() *physics.Collider {
	return b.collider
}

// Center returns the bullet's center position.
func (b *Bullet) Center() physics.Vector {
	return b.collider.Center()
}

// FromPlayer reports whether the cannon fired this bullet.
func (b *Bullet) FromPlayer() bool {
	return b.Speed < 0
}

// Update removes bullets outside the live band, then moves the rest.
func (b *Bullet) Update(ctx UpdateContext) (bool, error) {
	if b.destroyed {
		return true, nil
	}

	y := b.Center().Y
	if y < bulletTopLimit || y > ctx.Field.Height*bulletBottomFraction {
		return true, nil
	}

	b.collider.Move(physics.Vec(0, b.Speed*ctx.Delta.Seconds()))
	return false, nil
}

// Draw renders player shots as a narrow filled diamond and alien shots as
// a filled disc.
func (b *Bullet) Draw(ctx DrawContext) error {
	c := b.Center()
	if b.FromPlayer() {
		pts := ctx.Canvas.BorrowPoints(4)
		pts[0] = draw.Point{X: c.X, Y: c.Y - BulletRadius}
		pts[1] = draw.Point{X: c.X + BulletRadius/2, Y: c.Y}
		pts[2] = draw.Point{X: c.X, Y: c.Y + BulletRadius}
		pts[3] = draw.Point{X: c.X - BulletRadius/2, Y: c.Y}
		ctx.Canvas.DrawPolygon(pts, true)
	} else {
		ctx.Canvas.DrawCircle(draw.Point{X: c.X, Y: c.Y}, BulletRadius, true)
	}
	drawCollider(ctx, b.collider)
	return nil
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}
