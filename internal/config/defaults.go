package config

import (
	_ "embed"
)

//go:embed defaults/roller.yaml
var defaultRollerYAML []byte

// DefaultRollerConfig returns the built-in configuration. It matches the
// embedded defaults/roller.yaml.
func DefaultRollerConfig() RollerConfig {
	return RollerConfig{
		Level: LevelConfig{
			Count:     200,
			Spawn:     SizeConfig{Width: 2.5, Height: 1.0, Length: 2.5},
			Platform:  SizeConfig{Width: 3.0, Height: 1.0, Length: 3.0},
			PlatformY: 1.0,
			Gap: GapConfig{
				MinBase:  6.0,
				MinSlope: 2.0,
				MaxBase:  12.0,
				MaxSlope: 3.0,
			},
			Lateral:    Range{Min: -4.0, Max: 4.0},
			Resolution: 0.01,
		},
		Physics: PhysicsConfig{
			Speed:     7.0,
			Gravity:   13.0,
			JumpForce: 10.5,
			Radius:    1.0,
		},
		Collision: CollisionConfig{
			LandingTolerance: 0.4,
		},
		Run: RunConfig{
			DeathThreshold: -5.0,
			RespawnDelay:   1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Divisor: 40,
			Offset:  0,
			Cap:     0,
		},
		Input: InputConfig{
			HoldInitialMS: 550,
			HoldRepeatMS:  120,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRollerYAML
}
