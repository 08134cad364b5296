package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/rollhigh/internal/physics"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate reports every out-of-range value at once. A config that passes
// can be run without any further checks in the frame loop.
func (c RollerConfig) Validate() error {
	var errs []error

	if c.Level.Count < 1 {
		errs = append(errs, fmt.Errorf("level.count must be at least 1, got %d", c.Level.Count))
	}
	if err := c.GenParams().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.PhysicsParams().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := physics.ValidateRadius(c.Physics.Radius); err != nil {
		errs = append(errs, err)
	}
	if err := c.RunParams().Validate(); err != nil {
		errs = append(errs, err)
	}

	tol := c.Collision.LandingTolerance
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		errs = append(errs, fmt.Errorf("collision.landing_tolerance must be finite and non-negative, got %v", tol))
	}

	d := c.Difficulty
	if d.Enabled && (math.IsNaN(d.Divisor) || math.IsInf(d.Divisor, 0) || d.Divisor <= 0) {
		errs = append(errs, fmt.Errorf("difficulty.divisor must be positive and finite, got %v", d.Divisor))
	}
	if math.IsNaN(d.Offset) || math.IsInf(d.Offset, 0) || d.Offset < 0 {
		errs = append(errs, fmt.Errorf("difficulty.offset must be finite and non-negative, got %v", d.Offset))
	}
	if math.IsNaN(d.Cap) || math.IsInf(d.Cap, 0) || d.Cap < 0 {
		errs = append(errs, fmt.Errorf("difficulty.cap must be finite and non-negative, got %v", d.Cap))
	}

	if c.Input.HoldInitialMS <= 0 || c.Input.HoldRepeatMS <= 0 {
		errs = append(errs, fmt.Errorf("input hold windows must be positive, got %d/%d ms",
			c.Input.HoldInitialMS, c.Input.HoldRepeatMS))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
