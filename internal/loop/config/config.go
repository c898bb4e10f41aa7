// Package config centralizes all tunable game parameters.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Playfield resolution in logical units.
// Actual rendering scales to fit terminal size.
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600
)

// Max render resolution in terminal cells. Larger terminals get a border.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Alien formation
const (
	AlienRows     = 5
	AlienColumns  = 11
	AlienCellSize = 40.0 // grid pitch in logical units
	AlienTopRatio = 0.1  // first row sits at this fraction of the height
)

// Playfield zones as fractions of the width/height.
const (
	MarchLeftRatio   = 0.1
	MarchRightRatio  = 0.9
	MarchTopRatio    = 0.1
	GroundRatio      = 0.9 // ground line, bottom of the march zone
	InvasionTopRatio = 0.8 // aliens reaching this band win
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Tuning holds the gameplay numbers that can be overridden from a YAML
// file. Speeds are in logical units per second.
type Tuning struct {
	AlienFireChance    float64 `yaml:"alien_fire_chance"` // per column per 60 Hz tick
	AlienBulletSpeed   float64 `yaml:"alien_bullet_speed"`
	PlayerBulletSpeed  float64 `yaml:"player_bullet_speed"`
	CannonSpeed        float64 `yaml:"cannon_speed"`
	FireIntervalMS     int     `yaml:"fire_interval_ms"`
	MarchStep          float64 `yaml:"march_step"`
	MarchDrop          float64 `yaml:"march_drop"`
	MarchIntervalMaxMS int     `yaml:"march_interval_max_ms"`
	MarchIntervalMinMS int     `yaml:"march_interval_min_ms"`
	Bunkers            int     `yaml:"bunkers"`
}

// Default returns the classic tuning.
func Default() Tuning {
	return Tuning{
		AlienFireChance:    0.1,
		AlienBulletSpeed:   180,
		PlayerBulletSpeed:  180,
		CannonSpeed:        300,
		FireIntervalMS:     100,
		MarchStep:          10,
		MarchDrop:          20,
		MarchIntervalMaxMS: 1000,
		MarchIntervalMinMS: 100,
		Bunkers:            4,
	}
}

// Load reads a YAML tuning file on top of the defaults. An empty path
// returns the defaults; keys missing from the file keep their default.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning config: %w", err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning config: %w", err)
	}

	return t, nil
}

// Validate checks that every value is usable.
func (t Tuning) Validate() error {
	if t.AlienFireChance < 0 || t.AlienFireChance > 1 {
		return fmt.Errorf("alien_fire_chance must be within [0,1], got %.3f", t.AlienFireChance)
	}
	if t.AlienBulletSpeed <= 0 {
		return fmt.Errorf("alien_bullet_speed must be positive, got %.1f", t.AlienBulletSpeed)
	}
	if t.PlayerBulletSpeed <= 0 {
		return fmt.Errorf("player_bullet_speed must be positive, got %.1f", t.PlayerBulletSpeed)
	}
	if t.CannonSpeed <= 0 {
		return fmt.Errorf("cannon_speed must be positive, got %.1f", t.CannonSpeed)
	}
	if t.FireIntervalMS < 0 {
		return fmt.Errorf("fire_interval_ms must not be negative, got %d", t.FireIntervalMS)
	}
	if t.MarchStep <= 0 {
		return fmt.Errorf("march_step must be positive, got %.1f", t.MarchStep)
	}
	if t.MarchDrop < 0 {
		return fmt.Errorf("march_drop must not be negative, got %.1f", t.MarchDrop)
	}
	if t.MarchIntervalMinMS <= 0 || t.MarchIntervalMinMS > t.MarchIntervalMaxMS {
		return fmt.Errorf("march interval invalid: min(%d) must be positive and <= max(%d)",
			t.MarchIntervalMinMS, t.MarchIntervalMaxMS)
	}
	if t.Bunkers < 0 || t.Bunkers > 10 {
		return fmt.Errorf("bunkers must be within [0,10], got %d", t.Bunkers)
	}
	return nil
}

// FireInterval returns the cannon's minimum time between shots.
func (t Tuning) FireInterval() time.Duration {
	return time.Duration(t.FireIntervalMS) * time.Millisecond
}

// MarchInterval returns the time between alien steps. It shrinks linearly
// from the max interval with a full formation to the min with none left.
func (t Tuning) MarchInterval(alive, total int) time.Duration {
	maxMS := float64(t.MarchIntervalMaxMS)
	minMS := float64(t.MarchIntervalMinMS)
	ratio := 0.0
	if total > 0 {
		ratio = float64(alive) / float64(total)
	}
	return time.Duration(((maxMS-minMS)*ratio + minMS) * float64(time.Millisecond))
}
