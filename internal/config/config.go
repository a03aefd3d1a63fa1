// Package config provides YAML-based configuration loading and difficulty
// presets for Facade.
package config

import (
	"errors"
	"fmt"

	"github.com/jws412/Facade/internal/engine"
)

// FacadeConfig contains all configuration for the platformer.
type FacadeConfig struct {
	Display    FacadeDisplay    `yaml:"display"`
	Physics    FacadePhysics    `yaml:"physics"`
	Timing     FacadeTiming     `yaml:"timing"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// FacadeDisplay defines the backbuffer geometry.
type FacadeDisplay struct {
	Width    int `yaml:"width"`     // Backbuffer width in pixels
	Height   int `yaml:"height"`    // Backbuffer height in pixels
	TileSize int `yaml:"tile_size"` // Square tile edge in pixels
}

// FacadePhysics defines the integer kinematics constants.
type FacadePhysics struct {
	SpeedDenominator int `yaml:"speed_denominator"`
	AccelX           int `yaml:"accel_x"`
	AccelY           int `yaml:"accel_y"`
	LaunchSpeed      int `yaml:"launch_speed"`
	MaxJumpHold      int `yaml:"max_jump_hold"`
	WalkDivisor      int `yaml:"walk_divisor"`
	AnimPeriod       int `yaml:"anim_period"`
	OffscreenMag     int `yaml:"offscreen_mag"`
}

// FacadeTiming defines pacing of the simulation loop.
type FacadeTiming struct {
	TickRate  int `yaml:"tick_rate"`  // Ticks per second
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key counts as held after its last press
}

// Engine converts the physics section to engine parameters.
func (p FacadePhysics) Engine() engine.Physics {
	return engine.Physics{
		SpeedDenominator: p.SpeedDenominator,
		AccelX:           p.AccelX,
		AccelY:           p.AccelY,
		LaunchSpeed:      p.LaunchSpeed,
		MaxJumpHold:      p.MaxJumpHold,
		WalkDivisor:      p.WalkDivisor,
		AnimPeriod:       p.AnimPeriod,
		OffscreenMag:     uint8(p.OffscreenMag),
	}
}

// ColumnHeight returns the number of tile rows in one screen column.
func (d FacadeDisplay) ColumnHeight() int {
	return d.Height / d.TileSize
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the invariants the engine and compositor rely on.
func (c FacadeConfig) Validate() error {
	d, p := c.Display, c.Physics
	switch {
	case d.TileSize <= 0:
		return fmt.Errorf("%w: display.tile_size must be positive", ErrInvalid)
	case d.Width <= 0 || d.Width%d.TileSize != 0:
		return fmt.Errorf("%w: display.width must be a positive multiple of tile_size", ErrInvalid)
	case d.Height < d.TileSize:
		return fmt.Errorf("%w: display.height must hold at least one tile", ErrInvalid)
	case d.Width > 4096 || d.Height > 4096:
		return fmt.Errorf("%w: display larger than 4096 pixels", ErrInvalid)
	case p.SpeedDenominator <= 0:
		return fmt.Errorf("%w: physics.speed_denominator must be positive", ErrInvalid)
	case p.AccelX <= 0 || p.AccelY <= 0:
		return fmt.Errorf("%w: physics accelerations must be positive", ErrInvalid)
	case p.LaunchSpeed <= 0 || p.LaunchSpeed > 127:
		return fmt.Errorf("%w: physics.launch_speed must be in 1..127", ErrInvalid)
	case p.MaxJumpHold < 0:
		return fmt.Errorf("%w: physics.max_jump_hold must not be negative", ErrInvalid)
	case p.WalkDivisor <= 0:
		return fmt.Errorf("%w: physics.walk_divisor must be positive", ErrInvalid)
	case p.OffscreenMag < 4 || p.OffscreenMag > 127:
		return fmt.Errorf("%w: physics.offscreen_mag must be in 4..127", ErrInvalid)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive", ErrInvalid)
	case c.Timing.HoldTicks <= 0:
		return fmt.Errorf("%w: timing.hold_ticks must be positive", ErrInvalid)
	}
	if _, err := ParseDifficultyPreset(string(c.Difficulty)); err != nil {
		return err
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
}
