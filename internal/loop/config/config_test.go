package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		got, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") error = %v", err)
		}
		if got != Default() {
			t.Errorf("Load(\"\") = %+v, want defaults", got)
		}
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := writeTuning(t, "alien_fire_chance: 0.25\nbunkers: 2\n")
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.AlienFireChance != 0.25 || got.Bunkers != 2 {
			t.Errorf("overrides not applied: %+v", got)
		}
		if got.MarchStep != Default().MarchStep {
			t.Errorf("MarchStep = %v, want default %v", got.MarchStep, Default().MarchStep)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeTuning(t, "bunkers: [oops"))
		if err == nil || !strings.Contains(err.Error(), "parse") {
			t.Errorf("Load() error = %v, want parse error", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeTuning(t, "alien_fire_chance: 1.5\n"))
		if err == nil || !strings.Contains(err.Error(), "alien_fire_chance") {
			t.Errorf("Load() error = %v, want validation error", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"negative fire chance", func(t *Tuning) { t.AlienFireChance = -0.1 }},
		{"zero alien bullet speed", func(t *Tuning) { t.AlienBulletSpeed = 0 }},
		{"zero player bullet speed", func(t *Tuning) { t.PlayerBulletSpeed = 0 }},
		{"zero cannon speed", func(t *Tuning) { t.CannonSpeed = 0 }},
		{"negative fire interval", func(t *Tuning) { t.FireIntervalMS = -1 }},
		{"zero march step", func(t *Tuning) { t.MarchStep = 0 }},
		{"negative drop", func(t *Tuning) { t.MarchDrop = -5 }},
		{"min above max", func(t *Tuning) { t.MarchIntervalMinMS = 2000 }},
		{"zero min", func(t *Tuning) { t.MarchIntervalMinMS = 0 }},
		{"too many bunkers", func(t *Tuning) { t.Bunkers = 11 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := Default()
			tt.mutate(&tuning)
			if err := tuning.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestMarchInterval(t *testing.T) {
	tuning := Default()
	tests := []struct {
		alive, total int
		want         time.Duration
	}{
		{55, 55, 1000 * time.Millisecond},
		{0, 55, 100 * time.Millisecond},
		{11, 55, 280 * time.Millisecond},
		{0, 0, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		got := tuning.MarchInterval(tt.alive, tt.total)
		if diff := got - tt.want; diff < -time.Microsecond || diff > time.Microsecond {
			t.Errorf("MarchInterval(%d, %d) = %v, want %v", tt.alive, tt.total, got, tt.want)
		}
	}
}
