package object

import (
	"time"

	"github.com/tomz197/invaders/internal/physics"
)

// Cannon dimensions and defaults.
const (
	CannonWidth  = 22.0
	CannonHeight = 16.0
	CannonHP     = 3

	DefaultCannonSpeed  = 300.0 // logical units per second
	DefaultFireInterval = 100 * time.Millisecond
	DefaultBulletSpeed  = -180.0

	cannonFlashSeconds   = 0.6
	cannonFlashFrequency = 10.0 // Hz
)

// Cannon is the player's laser base. It slides along the bottom of the
// playfield and fires bullets upward.
type Cannon struct {
	HP           int
	Speed        float64       // horizontal speed, logical units per second
	FireInterval time.Duration // minimum time between shots
	BulletSpeed  float64       // speed given to fired bullets (negative = up)

	collider     *physics.Collider
	fireCooldown float64 // seconds until the next shot is allowed
	flash        float64 // seconds of hit blinking remaining
}

// NewCannon creates a cannon centered at center with default handling.
func NewCannon(center physics.Vector) *Cannon {
	return &Cannon{
		HP:           CannonHP,
		Speed:        DefaultCannonSpeed,
		FireInterval: DefaultFireInterval,
		BulletSpeed:  DefaultBulletSpeed,
		collider:     colliderFor(center, CannonWidth, CannonHeight, physics.Cannon),
	}
}

// Collider returns the cannon's collider.
func (c *Cannon) Collider() *physics.Collider {
	return c.collider
}

// Center returns the cannon's center position.
func (c *Cannon) Center() physics.Vector {
	return c.collider.Center()
}

// Hit takes one hit point and reports whether the cannon is out of them.
func (c *Cannon) Hit() bool {
	if c.HP > 0 {
		c.HP--
	}
	c.flash = cannonFlashSeconds
	return c.HP == 0
}

// Update moves the cannon from input and fires when allowed.
func (c *Cannon) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	if c.flash > 0 {
		c.flash -= dt
	}

	var dx float64
	if ctx.Input.Left {
		dx -= c.Speed * dt
	}
	if ctx.Input.Right {
		dx += c.Speed * dt
	}
	if dx != 0 {
		x := c.Center().X
		// Keep the whole sprite on the playfield.
		minX, maxX := CannonWidth/2, ctx.Field.Width-CannonWidth/2
		if x+dx < minX {
			dx = minX - x
		}
		if x+dx > maxX {
			dx = maxX - x
		}
		c.collider.Move(physics.Vec(dx, 0))
	}

	c.fireCooldown -= dt
	if ctx.Input.Fire && c.fireCooldown <= 0 && ctx.Spawner != nil {
		c.fireCooldown = c.FireInterval.Seconds()
		center := c.Center()
		ctx.Spawner.Spawn(NewBullet(physics.Vec(center.X, center.Y-CannonHeight), c.BulletSpeed))
	}

	return false, nil
}

// Draw renders the cannon, blinking for a moment after it is hit.
func (c *Cannon) Draw(ctx DrawContext) error {
	if !ShouldRenderBlink(c.flash, cannonFlashFrequency) {
		return nil
	}
	cannonSprite.draw(ctx.Canvas, c.Center(), CannonWidth, CannonHeight)
	drawCollider(ctx, c.collider)
	return nil
}

// DrawLifeIcons draws one small cannon per remaining hit point along the
// bottom edge of the playfield.
func DrawLifeIcons(ctx DrawContext, field Playfield, hp int) {
	y := field.Height - CannonHeight - 10
	for i := 0; i < hp; i++ {
		cannonSprite.draw(ctx.Canvas, physics.Vec(CannonWidth*2*float64(i+1), y), CannonWidth, CannonHeight)
	}
}
