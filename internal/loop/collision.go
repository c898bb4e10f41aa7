package loop

import (
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// resolveCollisions runs the broad phase over every live collider and
// applies the game rules to each overlapping pair. Entities hit during the
// pass are only marked; the lists are swept once Detect has returned.
func (l *Level) resolveCollisions() {
	clear(l.owners)
	clear(l.removed)
	l.colliders = l.colliders[:0]

	track := func(obj object.Collidable) {
		c := obj.Collider()
		l.colliders = append(l.colliders, c)
		l.owners[c] = obj
	}
	for _, b := range l.bullets {
		track(b)
	}
	for _, a := range l.aliens {
		track(a)
	}
	for _, b := range l.bunkers {
		track(b)
	}
	track(l.cannon)

	bounds := physics.NewRect(physics.Vec(0, l.field.Height), physics.Vec(l.field.Width, 0))
	physics.Detect(l.colliders, bounds, l.handlePair)

	l.bullets = sweep(l.bullets)
	l.aliens = sweep(l.aliens)
	l.bunkers = sweep(l.bunkers)
	clear(l.colliders)
}

// handlePair applies the rules for one overlapping pair. Only pairs with at
// least one bullet matter. Pairs touching an already removed collider are
// ignored, so a bullet overlapping two targets only hits one of them.
func (l *Level) handlePair(a, b *physics.Collider) {
	if l.isRemoved(a) || l.isRemoved(b) {
		return
	}
	if a.Category() != physics.Bullet {
		a, b = b, a
	}
	if a.Category() != physics.Bullet {
		return
	}

	switch b.Category() {
	case physics.Bullet:
		l.remove(a)
		l.remove(b)

	case physics.Alien:
		l.remove(a)
		l.remove(b)
		l.session.Score++
		c := b.Center()
		object.SpawnExplosion(l.rng, c.X, c.Y, explosionParticles, explosionSpeed, explosionLifetime, l)

	case physics.Bunker:
		l.remove(a)
		if bunker, ok := l.owners[b].(*object.Bunker); ok && bunker.Hit() {
			l.remove(b)
		}

	case physics.Cannon:
		l.remove(a)
		if l.cannon.Hit() {
			l.session.Outcome = OutcomeLost
			c := b.Center()
			object.SpawnExplosion(l.rng, c.X, c.Y, explosionParticles*2, explosionSpeed, explosionLifetime*2, l)
		}
	}
}

func (l *Level) isRemoved(c *physics.Collider) bool {
	_, ok := l.removed[c]
	return ok
}

// remove records c as destroyed for the rest of the pass and marks its owner.
func (l *Level) remove(c *physics.Collider) {
	l.removed[c] = struct{}{}
	if d, ok := l.owners[c].(object.Destructible); ok {
		d.MarkDestroyed()
	}
}

// sweep drops destroyed entities, keeping order.
func sweep[T object.Destructible](items []T) []T {
	kept := items[:0]
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
