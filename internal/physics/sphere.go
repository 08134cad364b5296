// Package physics advances the player sphere and resolves its landings.
//
// Step and Resolve are pure: they take the sphere by value and return the
// updated copy, so a frame is always Step followed by Resolve.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidParams is returned for non-positive or non-finite constants.
var ErrInvalidParams = errors.New("physics: invalid parameters")

// Sphere is the player body.
type Sphere struct {
	Position  mgl64.Vec3
	VelocityY float64
	Radius    float64

	// Rolling angles in radians, derived from horizontal displacement.
	// Visual only.
	RotationX float64 // about X, from forward/back motion
	RotationZ float64 // about Z, from lateral motion

	OnGround bool
}

// Bottom returns the lowest Y of the sphere.
func (s Sphere) Bottom() float64 {
	return s.Position.Y() - s.Radius
}

// Intents is the set of player requests for one frame.
type Intents struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool // true only on the frame the jump began
}

// Params are the integrator constants.
type Params struct {
	Speed     float64 // horizontal units per second per axis
	Gravity   float64 // units per second squared, pulling toward -Y
	JumpForce float64 // initial upward velocity of a jump
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		Speed:     7,
		Gravity:   13,
		JumpForce: 10.5,
	}
}

// Validate checks that every constant is positive and finite.
func (p Params) Validate() error {
	return positive(map[string]float64{
		"speed":      p.Speed,
		"gravity":    p.Gravity,
		"jump force": p.JumpForce,
	})
}

// ValidateRadius checks a sphere radius.
func ValidateRadius(r float64) error {
	return positive(map[string]float64{"radius": r})
}

func positive(values map[string]float64) error {
	var errs []error
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidParams, name, v))
		}
	}
	return errors.Join(errs...)
}
