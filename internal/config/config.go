// Package config provides YAML-based configuration loading, presets and
// the difficulty ramp for the roller.
package config

import (
	"github.com/vovakirdan/rollhigh/internal/physics"
	"github.com/vovakirdan/rollhigh/internal/run"
	"github.com/vovakirdan/rollhigh/internal/world"
)

// RollerConfig contains every tunable of the game.
type RollerConfig struct {
	Level      LevelConfig      `yaml:"level"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Collision  CollisionConfig  `yaml:"collision"`
	Run        RunConfig        `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// LevelConfig defines procedural level layout.
type LevelConfig struct {
	Count      int        `yaml:"count"`
	Spawn      SizeConfig `yaml:"spawn"`
	Platform   SizeConfig `yaml:"platform"`
	PlatformY  float64    `yaml:"platform_y"`
	Gap        GapConfig  `yaml:"gap"`
	Lateral    Range      `yaml:"lateral"`
	Resolution float64    `yaml:"resolution"`
}

// SizeConfig is a box extent.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Length float64 `yaml:"length"`
}

// GapConfig defines forward spacing as a function of difficulty d:
// min = MinBase + d*MinSlope, max = MaxBase + d*MaxSlope.
type GapConfig struct {
	MinBase  float64 `yaml:"min_base"`
	MinSlope float64 `yaml:"min_slope"`
	MaxBase  float64 `yaml:"max_base"`
	MaxSlope float64 `yaml:"max_slope"`
}

// Range is a closed interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PhysicsConfig defines the sphere's motion.
type PhysicsConfig struct {
	Speed     float64 `yaml:"speed"`
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"`
	Radius    float64 `yaml:"radius"`
}

// CollisionConfig defines landing detection.
type CollisionConfig struct {
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// RunConfig defines death and respawn.
type RunConfig struct {
	DeathThreshold float64 `yaml:"death_threshold"`
	RespawnDelay   float64 `yaml:"respawn_delay"` // seconds
}

// DifficultyConfig defines the per-platform difficulty ramp.
type DifficultyConfig struct {
	Enabled bool    `yaml:"enabled"`
	Divisor float64 `yaml:"divisor"` // difficulty grows by 1 every Divisor platforms
	Offset  float64 `yaml:"offset"`  // difficulty of platform 0
	Cap     float64 `yaml:"cap"`     // 0 = uncapped
}

// InputConfig defines how long a key press counts as held.
// Terminals report presses and auto-repeats, never releases.
type InputConfig struct {
	HoldInitialMS int `yaml:"hold_initial_ms"` // after a fresh press, covers the auto-repeat delay
	HoldRepeatMS  int `yaml:"hold_repeat_ms"`  // after each auto-repeat
}

// GenParams converts the level section into generator parameters.
func (c RollerConfig) GenParams() world.GenParams {
	l := c.Level
	return world.GenParams{
		Spawn:       world.Size{Width: l.Spawn.Width, Height: l.Spawn.Height, Length: l.Spawn.Length},
		Platform:    world.Size{Width: l.Platform.Width, Height: l.Platform.Height, Length: l.Platform.Length},
		Y:           l.PlatformY,
		GapMinBase:  l.Gap.MinBase,
		GapMinSlope: l.Gap.MinSlope,
		GapMaxBase:  l.Gap.MaxBase,
		GapMaxSlope: l.Gap.MaxSlope,
		Lateral:     world.Bounds{Min: l.Lateral.Min, Max: l.Lateral.Max},
		Resolution:  l.Resolution,
		Ramp:        NewDifficultyRamp(c.Difficulty),
	}
}

// PhysicsParams converts the physics section into integrator constants.
func (c RollerConfig) PhysicsParams() physics.Params {
	return physics.Params{
		Speed:     c.Physics.Speed,
		Gravity:   c.Physics.Gravity,
		JumpForce: c.Physics.JumpForce,
	}
}

// RunParams converts the run section into state machine parameters.
func (c RollerConfig) RunParams() run.Params {
	return run.Params{
		DeathThreshold: c.Run.DeathThreshold,
		RespawnDelay:   c.Run.RespawnDelay,
	}
}

// Motion returns the jump envelope used for reachability checks.
func (c RollerConfig) Motion() world.Motion {
	return world.Motion{
		Speed:     c.Physics.Speed,
		Gravity:   c.Physics.Gravity,
		JumpForce: c.Physics.JumpForce,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
