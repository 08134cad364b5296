package core

import (
	"math"
	"testing"
)

func TestClampRampIndex(t *testing.T) {
	// Shade indexes are clamped into a four-glyph ramp.
	tests := []struct {
		name     string
		val      int
		expected int
	}{
		{"below", -2, 0},
		{"first", 0, 0},
		{"inside", 2, 2},
		{"last", 3, 3},
		{"above", 9, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, 0, 3); got != tc.expected {
				t.Errorf("Clamp(%d, 0, 3) = %d, expected %d", tc.val, got, tc.expected)
			}
		})
	}
}

func TestClampFDrawRange(t *testing.T) {
	// Draws from the generator are clamped back into their bounds.
	tests := []struct {
		name     string
		val      float64
		expected float64
	}{
		{"below", 5.99, 6},
		{"lower bound", 6, 6},
		{"inside", 9.37, 9.37},
		{"upper bound", 12, 12},
		{"above", 12.0000001, 12},
		{"negative infinity", math.Inf(-1), 6},
		{"positive infinity", math.Inf(1), 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, 6, 12); got != tc.expected {
				t.Errorf("ClampF(%v, 6, 12) = %v, expected %v", tc.val, got, tc.expected)
			}
		})
	}
}
