package loop

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// Explosion look for a destroyed alien.
const (
	explosionParticles = 10
	explosionSpeed     = 120.0
	explosionLifetime  = 0.4
)

// alienRowKinds is the sprite used by each formation row, top to bottom.
var alienRowKinds = [config.AlienRows]object.AlienKind{
	object.AlienRed,
	object.AlienGreen,
	object.AlienGreen,
	object.AlienBlue,
	object.AlienBlue,
}

// Level is one round of play: the alien formation, the cannon, the bunkers
// and every bullet in flight.
type Level struct {
	field   object.Playfield
	tuning  config.Tuning
	session *Session
	rng     *rand.Rand
	debug   bool

	aliens  []*object.Alien
	bullets []*object.Bullet
	bunkers []*object.Bunker
	cannon  *object.Cannon
	effects []object.Object
	toSpawn []object.Object // Objects to add after current update cycle

	totalAliens  int
	moveLeft     bool
	marchElapsed time.Duration

	// Reused every tick by the collision pass.
	colliders []*physics.Collider
	owners    map[*physics.Collider]object.Collidable
	removed   map[*physics.Collider]struct{}
}

// NewLevel lays out a fresh level and resets the session's score.
func NewLevel(session *Session, tuning config.Tuning, rng *rand.Rand) *Level {
	session.Reset()
	l := &Level{
		field:    object.Playfield{Width: config.PlayfieldWidth, Height: config.PlayfieldHeight},
		tuning:   tuning,
		session:  session,
		rng:      rng,
		moveLeft: true,
		owners:   make(map[*physics.Collider]object.Collidable),
		removed:  make(map[*physics.Collider]struct{}),
	}
	l.spawnAliens()
	l.spawnBunkers()

	w, h := l.field.Width, l.field.Height
	l.cannon = object.NewCannon(physics.Vec(w/2, h*config.GroundRatio-object.CannonHeight))
	l.cannon.Speed = tuning.CannonSpeed
	l.cannon.FireInterval = tuning.FireInterval()
	l.cannon.BulletSpeed = -tuning.PlayerBulletSpeed
	return l
}

// spawnAliens fills the formation grid, centered horizontally.
func (l *Level) spawnAliens() {
	const cell = config.AlienCellSize
	startX := (l.field.Width - config.AlienColumns*cell) / 2
	startY := l.field.Height * config.AlienTopRatio

	for col := 0; col < config.AlienColumns; col++ {
		for row := 0; row < config.AlienRows; row++ {
			center := physics.Vec(
				float64(col)*cell+cell/2+startX,
				float64(row)*cell+cell/2+startY,
			)
			l.aliens = append(l.aliens, object.NewAlien(alienRowKinds[row], col, center))
		}
	}
	l.totalAliens = len(l.aliens)
}

// spawnBunkers spaces the bunkers evenly above the cannon.
func (l *Level) spawnBunkers() {
	n := l.tuning.Bunkers
	gap := l.field.Width / float64(n+1)
	y := l.field.Height*config.GroundRatio - object.CannonHeight - object.BunkerHeight - 10
	for i := 0; i < n; i++ {
		l.bunkers = append(l.bunkers, object.NewBunker(physics.Vec(gap*float64(i+1), y)))
	}
}

// SetDebug freezes the march and draws collider outlines.
func (l *Level) SetDebug(debug bool) {
	l.debug = debug
}

// Done reports whether the level has an outcome.
func (l *Level) Done() bool {
	return l.session.Outcome != OutcomeNone
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (l *Level) Spawn(obj object.Object) {
	l.toSpawn = append(l.toSpawn, obj)
}

// flushSpawned adds all queued objects to the level and clears the queue.
func (l *Level) flushSpawned() {
	for _, obj := range l.toSpawn {
		if b, ok := obj.(*object.Bullet); ok {
			l.bullets = append(l.bullets, b)
			continue
		}
		l.effects = append(l.effects, obj)
	}
	clear(l.toSpawn)
	l.toSpawn = l.toSpawn[:0]
}

// Update advances the level by one frame.
func (l *Level) Update(delta time.Duration, in object.Input) error {
	if l.Done() {
		return nil
	}

	ctx := object.UpdateContext{
		Delta:   delta,
		Input:   in,
		Field:   l.field,
		Spawner: l,
	}

	l.marchElapsed += delta
	if l.marchElapsed >= l.tuning.MarchInterval(len(l.aliens), l.totalAliens) {
		l.marchElapsed = 0
		l.march()
		if l.Done() {
			return nil
		}
	}

	if _, err := l.cannon.Update(ctx); err != nil {
		return err
	}

	var err error
	if l.bullets, err = updateAll(l.bullets, ctx); err != nil {
		return err
	}
	if l.aliens, err = updateAll(l.aliens, ctx); err != nil {
		return err
	}
	if err := l.updateEffects(ctx); err != nil {
		return err
	}

	l.resolveCollisions()

	if len(l.aliens) == 0 && !l.Done() {
		l.session.Outcome = OutcomeWon
	}

	if !l.Done() {
		l.alienFire(delta)
	}
	l.flushSpawned()
	return nil
}

// updateAll updates every object and drops the ones that ask for removal.
func updateAll[T object.Object](items []T, ctx object.UpdateContext) ([]T, error) {
	kept := items[:0]
	for _, item := range items {
		remove, err := item.Update(ctx)
		if err != nil {
			return items, err
		}
		if !remove {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept, nil
}

// updateEffects updates particles and returns expired ones to their pool.
func (l *Level) updateEffects(ctx object.UpdateContext) error {
	kept := l.effects[:0]
	for _, obj := range l.effects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(l.effects[len(kept):])
	l.effects = kept
	return nil
}

// march steps the formation sideways, or down and back when any alien has
// left the march zone. Aliens reaching the ground band end the level.
func (l *Level) march() {
	w, h := l.field.Width, l.field.Height
	zoneA := physics.Vec(w*config.MarchLeftRatio, h*config.GroundRatio)
	zoneB := physics.Vec(w*config.MarchRightRatio, h*config.MarchTopRatio)
	groundB := physics.Vec(w*config.MarchRightRatio, h*config.InvasionTopRatio)

	outside := false
	landed := false
	for _, a := range l.aliens {
		c := a.Collider()
		if !c.InBounds(zoneA, zoneB) {
			outside = true
		}
		if c.InBounds(zoneA, groundB) {
			landed = true
		}
	}

	if landed {
		l.session.Outcome = OutcomeLost
		return
	}
	if outside {
		l.moveLeft = !l.moveLeft
	}
	if l.debug {
		return
	}

	step := physics.Vec(l.tuning.MarchStep, 0)
	if l.moveLeft {
		step.X = -step.X
	}
	if outside {
		step.Y = l.tuning.MarchDrop
	}
	for _, a := range l.aliens {
		a.Step(step)
	}
}

// alienFire gives the bottom alien of every column a chance to shoot.
// The per-tick chance is defined at 60 Hz and scaled to the frame delta.
func (l *Level) alienFire(delta time.Duration) {
	chance := l.tuning.AlienFireChance
	if chance <= 0 || len(l.aliens) == 0 {
		return
	}
	if chance < 1 {
		ticks := delta.Seconds() * config.ClientTargetFPS
		chance = 1 - math.Pow(1-chance, ticks)
	}

	for _, a := range l.bottomAliens() {
		if l.rng.Float64() >= chance {
			continue
		}
		c := a.Center()
		l.Spawn(object.NewBullet(physics.Vec(c.X, c.Y+a.Collider().Radius()+10), l.tuning.AlienBulletSpeed))
	}
}

// bottomAliens returns the lowest alien of each column, in column order.
func (l *Level) bottomAliens() []*object.Alien {
	bottom := make(map[int]*object.Alien, config.AlienColumns)
	for _, a := range l.aliens {
		if cur, ok := bottom[a.Column]; !ok || a.Center().Y > cur.Center().Y {
			bottom[a.Column] = a
		}
	}

	result := make([]*object.Alien, 0, len(bottom))
	for col := 0; col < config.AlienColumns; col++ {
		if a, ok := bottom[col]; ok {
			result = append(result, a)
		}
	}
	return result
}

// Draw draws the playfield and every entity.
func (l *Level) Draw(ctx object.DrawContext) error {
	ctx.Debug = l.debug

	groundY := l.field.Height * config.GroundRatio
	ctx.Canvas.DrawLine(draw.Point{X: 0, Y: groundY}, draw.Point{X: l.field.Width, Y: groundY})

	for _, b := range l.bunkers {
		if err := b.Draw(ctx); err != nil {
			return err
		}
	}
	for _, a := range l.aliens {
		if err := a.Draw(ctx); err != nil {
			return err
		}
	}
	for _, b := range l.bullets {
		if err := b.Draw(ctx); err != nil {
			return err
		}
	}
	for _, e := range l.effects {
		if err := e.Draw(ctx); err != nil {
			return err
		}
	}
	if err := l.cannon.Draw(ctx); err != nil {
		return err
	}

	object.DrawLifeIcons(ctx, l.field, l.cannon.HP)
	return nil
}

// HP returns the cannon's remaining hit points.
func (l *Level) HP() int {
	return l.cannon.HP
}

// AliensLeft returns the number of aliens still alive.
func (l *Level) AliensLeft() int {
	return len(l.aliens)
}
