package object

import (
	"bytes"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

type spawnRecorder struct {
	spawned []Object
}

func (s *spawnRecorder) Spawn(obj Object) {
	s.spawned = append(s.spawned, obj)
}

var testField = Playfield{Width: 800, Height: 600}

func frameCtx(in Input, spawner Spawner) UpdateContext {
	return UpdateContext{
		Delta:   time.Second / 60,
		Input:   in,
		Field:   testField,
		Spawner: spawner,
	}
}

func TestAlienKinds(t *testing.T) {
	tests := []struct {
		kind       AlienKind
		w, h       float64
		wantRadius float64
	}{
		{AlienRed, 16, 16, 8},
		{AlienGreen, 24, 16, 12},
		{AlienBlue, 22, 16, 11},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w, h := tt.kind.Size()
			if w != tt.w || h != tt.h {
				t.Errorf("Size() = %vx%v, want %vx%v", w, h, tt.w, tt.h)
			}
			a := NewAlien(tt.kind, 3, physics.Vec(100, 100))
			if got := a.Collider().Radius(); got != tt.wantRadius {
				t.Errorf("radius = %v, want %v", got, tt.wantRadius)
			}
			if a.Collider().Category() != physics.Alien {
				t.Errorf("category = %v, want alien", a.Collider().Category())
			}
		})
	}
}

func TestAlienStepAndAnimation(t *testing.T) {
	a := NewAlien(AlienRed, 0, physics.Vec(100, 100))
	a.Step(physics.Vec(10, 20))
	if got := a.Center(); got != physics.Vec(110, 120) {
		t.Errorf("Center() after Step = %v, want (110,120)", got)
	}

	ctx := UpdateContext{Delta: 300 * time.Millisecond}
	a.Update(ctx)
	if a.Frame() != 0 {
		t.Errorf("frame after 0.3s = %d, want 0", a.Frame())
	}
	a.Update(ctx)
	if a.Frame() != 1 {
		t.Errorf("frame after 0.6s = %d, want 1", a.Frame())
	}

	a.MarkDestroyed()
	if remove, _ := a.Update(ctx); !remove {
		t.Error("destroyed alien should be removed")
	}
}

func TestBulletMovementAndCulling(t *testing.T) {
	tests := []struct {
		name       string
		start      physics.Vector
		speed      float64
		wantRemove bool
	}{
		{"player bullet in band", physics.Vec(400, 300), -180, false},
		{"alien bullet in band", physics.Vec(400, 300), 180, false},
		{"above top limit", physics.Vec(400, 19), -180, true},
		{"below bottom limit", physics.Vec(400, 541), 180, true},
		{"just inside bottom limit", physics.Vec(400, 539), 180, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBullet(tt.start, tt.speed)
			remove, err := b.Update(UpdateContext{Delta: 100 * time.Millisecond, Field: testField})
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if remove != tt.wantRemove {
				t.Fatalf("remove = %v, want %v", remove, tt.wantRemove)
			}
			if remove {
				return
			}
			wantY := tt.start.Y + tt.speed*0.1
			if got := b.Center().Y; math.Abs(got-wantY) > 1e-9 {
				t.Errorf("y = %v, want %v", got, wantY)
			}
			if b.FromPlayer() != (tt.speed < 0) {
				t.Errorf("FromPlayer() = %v for speed %v", b.FromPlayer(), tt.speed)
			}
		})
	}
}

func TestBunkerHit(t *testing.T) {
	b := NewBunker(physics.Vec(160, 500))
	for i := 0; i < BunkerHP-1; i++ {
		if b.Hit() {
			t.Fatalf("bunker destroyed after %d hits", i+1)
		}
	}
	if b.HP != 1 {
		t.Fatalf("HP = %d, want 1", b.HP)
	}
	if !b.Hit() {
		t.Fatal("bunker should be destroyed at zero HP")
	}
	if !b.IsDestroyed() {
		t.Error("IsDestroyed() = false after final hit")
	}
	if remove, _ := b.Update(UpdateContext{}); !remove {
		t.Error("destroyed bunker should be removed")
	}
}

func TestCannonFireThrottle(t *testing.T) {
	c := NewCannon(physics.Vec(400, 524))
	rec := &spawnRecorder{}

	// Hold fire for half a second at 60 fps.
	for i := 0; i < 30; i++ {
		c.Update(frameCtx(Input{Fire: true}, rec))
	}

	if len(rec.spawned) < 4 || len(rec.spawned) > 6 {
		t.Fatalf("spawned %d bullets in 0.5s, want about 5", len(rec.spawned))
	}
	b, ok := rec.spawned[0].(*Bullet)
	if !ok {
		t.Fatalf("spawned %T, want *Bullet", rec.spawned[0])
	}
	if got := b.Center(); got != physics.Vec(400, 524-CannonHeight) {
		t.Errorf("bullet spawned at %v, want (400,508)", got)
	}
	if !b.FromPlayer() {
		t.Error("cannon bullet should move up")
	}
}

func TestCannonMovementClamped(t *testing.T) {
	c := NewCannon(physics.Vec(20, 524))
	for i := 0; i < 10; i++ {
		c.Update(frameCtx(Input{Left: true}, nil))
	}
	if got := c.Center().X; math.Abs(got-CannonWidth/2) > 1e-9 {
		t.Errorf("x = %v, want clamp at %v", got, CannonWidth/2)
	}

	c = NewCannon(physics.Vec(400, 524))
	c.Update(frameCtx(Input{Right: true}, nil))
	if got := c.Center().X; got <= 400 {
		t.Errorf("x = %v, want > 400 after moving right", got)
	}
}

func TestCannonHit(t *testing.T) {
	c := NewCannon(physics.Vec(400, 524))
	if c.Hit() || c.Hit() {
		t.Fatal("cannon out of HP too early")
	}
	if !c.Hit() {
		t.Fatal("third hit should empty the cannon")
	}
	if c.HP != 0 {
		t.Errorf("HP = %d, want 0", c.HP)
	}
}

func TestSpawnExplosion(t *testing.T) {
	rec := &spawnRecorder{}
	SpawnExplosion(rand.New(rand.NewSource(1)), 100, 100, 8, 120, 0.4, rec)
	if len(rec.spawned) != 8 {
		t.Fatalf("spawned %d particles, want 8", len(rec.spawned))
	}

	p := rec.spawned[0].(*Particle)
	remove, _ := p.Update(UpdateContext{Delta: time.Second})
	if !remove {
		t.Error("particle should expire after its lifetime")
	}
	ReleaseObject(p)

	SpawnExplosion(rand.New(rand.NewSource(1)), 0, 0, 3, 1, 1, nil)
}

func TestSpawnExplosionSeeded(t *testing.T) {
	burst := func(seed int64) []Particle {
		rec := &spawnRecorder{}
		SpawnExplosion(rand.New(rand.NewSource(seed)), 50, 50, 5, 100, 1, rec)
		out := make([]Particle, 0, len(rec.spawned))
		for _, obj := range rec.spawned {
			out = append(out, *obj.(*Particle))
		}
		return out
	}

	a, b := burst(42), burst(42)
	if len(a) != 5 || len(b) != 5 {
		t.Fatalf("spawned %d and %d particles, want 5", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("particle %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDrawLightsCanvas(t *testing.T) {
	canvas := draw.NewScaledCanvas(160, 60, testField.Width, testField.Height)
	var buf bytes.Buffer
	ctx := DrawContext{Canvas: canvas, Writer: draw.NewChunkWriter(&buf, 0, 0), Debug: true}

	objects := []Object{
		NewAlien(AlienBlue, 0, physics.Vec(200, 100)),
		NewBullet(physics.Vec(300, 300), -180),
		NewBullet(physics.Vec(300, 300), 180),
		NewBunker(physics.Vec(160, 480)),
		NewCannon(physics.Vec(400, 524)),
	}
	for _, obj := range objects {
		canvas.Clear()
		if err := obj.Draw(ctx); err != nil {
			t.Fatalf("%T.Draw() error = %v", obj, err)
		}
		var out bytes.Buffer
		canvas.Render(&out)
		if !bytes.ContainsAny(out.Bytes(), "█▀▄") {
			t.Errorf("%T drew nothing", obj)
		}
	}
}

func TestShouldRenderBlink(t *testing.T) {
	if !ShouldRenderBlink(0, 10) {
		t.Error("no flash time should always render")
	}
	if ShouldRenderBlink(0.05, 10) == ShouldRenderBlink(0.15, 10) {
		t.Error("adjacent blink phases should differ")
	}
}
