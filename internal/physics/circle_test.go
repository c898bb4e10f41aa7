package physics

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewCircleRejectsBadRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewCircle(Vec(0, 0), r); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("NewCircle(r=%v) error = %v, want ErrInvalidGeometry", r, err)
		}
	}

	for _, center := range []Vector{Vec(math.NaN(), 0), Vec(0, math.Inf(-1))} {
		if _, err := NewCircle(center, 1); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("NewCircle(center=%v) error = %v, want ErrInvalidGeometry", center, err)
		}
	}

	c, err := NewCircle(Vec(1, 2), 3)
	if err != nil {
		t.Fatalf("NewCircle() unexpected error: %v", err)
	}
	if c.Center != Vec(1, 2) || c.Radius != 3 {
		t.Errorf("NewCircle() = %+v", c)
	}
}

func TestMustCirclePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCircle with zero radius should panic")
		}
	}()
	MustCircle(Vec(0, 0), 0)
}

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"overlapping", MustCircle(Vec(0, 0), 5), MustCircle(Vec(8, 0), 5), true},
		{"apart", MustCircle(Vec(0, 0), 5), MustCircle(Vec(11, 0), 5), false},
		{"touching", MustCircle(Vec(0, 0), 5), MustCircle(Vec(10, 0), 5), true},
		{"same center", MustCircle(Vec(4, 4), 1), MustCircle(Vec(4, 4), 2), true},
		{"contained", MustCircle(Vec(0, 0), 10), MustCircle(Vec(2, 1), 1), true},
		{"diagonal", MustCircle(Vec(0, 0), 5), MustCircle(Vec(3, 4), 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCircleOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := MustCircle(Vec(rng.Float64()*100, rng.Float64()*100), 1+rng.Float64()*20)
		b := MustCircle(Vec(rng.Float64()*100, rng.Float64()*100), 1+rng.Float64()*20)
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("asymmetric overlap for %+v and %+v", a, b)
		}
	}
}

func TestCircleTranslate(t *testing.T) {
	c := MustCircle(Vec(1, 1), 4)
	moved := c.Translate(Vec(2, -3))

	if moved.Center != Vec(3, -2) || moved.Radius != 4 {
		t.Errorf("Translate() = %+v", moved)
	}
	if c.Center != Vec(1, 1) {
		t.Error("Translate must not modify the receiver")
	}
}

func TestCircleBounds(t *testing.T) {
	b := MustCircle(Vec(10, 20), 5).Bounds()
	want := Rect{Min: Vec(5, 15), Max: Vec(15, 25)}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}
