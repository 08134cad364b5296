package config

import "math"

// DifficultyRamp maps a platform index to a difficulty scalar.
// It satisfies world.Ramp.
type DifficultyRamp struct {
	cfg DifficultyConfig
}

// NewDifficultyRamp creates a ramp from its configuration.
func NewDifficultyRamp(cfg DifficultyConfig) *DifficultyRamp {
	return &DifficultyRamp{cfg: cfg}
}

// IsEnabled returns whether difficulty grows with the platform index.
func (d *DifficultyRamp) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns offset + index/divisor. The result only saturates when a
// positive cap is configured; the default ramp grows without bound.
// A disabled ramp stays at the offset.
func (d *DifficultyRamp) Level(index int) float64 {
	if !d.IsEnabled() || d.cfg.Divisor <= 0 {
		return d.cfg.Offset
	}

	level := d.cfg.Offset + float64(index)/d.cfg.Divisor
	if d.cfg.Cap > 0 {
		level = math.Min(level, d.cfg.Cap)
	}
	return level
}

// InitialLevelForPreset returns the difficulty offset for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
