package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlatformBoundaries(t *testing.T) {
	p := Platform{Width: 3, Height: 1, Length: 4, Center: mgl64.Vec3{2, 1, 10}}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"left", p.Left(), 0.5},
		{"right", p.Right(), 3.5},
		{"back", p.Back(), 8},
		{"front", p.Front(), 12},
		{"top", p.Top(), 1.5},
		{"bottom", p.Bottom(), 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestPlatformContainsXZ(t *testing.T) {
	p := Platform{Width: 2, Height: 1, Length: 2, Center: mgl64.Vec3{0, 0, 0}}

	tests := []struct {
		name string
		pos  mgl64.Vec3
		want bool
	}{
		{"center", mgl64.Vec3{0, 5, 0}, true},
		{"left edge inclusive", mgl64.Vec3{-1, 0, 0}, true},
		{"front-right corner inclusive", mgl64.Vec3{1, 0, 1}, true},
		{"just outside right", mgl64.Vec3{1.0001, 0, 0}, false},
		{"behind", mgl64.Vec3{0, 0, -1.5}, false},
		{"height ignored", mgl64.Vec3{0, -100, 0}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.ContainsXZ(tc.pos); got != tc.want {
				t.Errorf("ContainsXZ(%v) = %v, expected %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestLevelSpawn(t *testing.T) {
	l := NewLevel(7, []Platform{
		{Width: 2, Height: 2, Length: 2, Center: mgl64.Vec3{0, 0, 0}},
		{Width: 3, Height: 1, Length: 3, Center: mgl64.Vec3{1, 1, 8}},
	})

	// Top is 1.0, so a unit sphere rests at 2.0.
	if got := l.Spawn(1); got != (mgl64.Vec3{0, 2, 0}) {
		t.Errorf("Spawn(1) = %v, expected (0, 2, 0)", got)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", l.Len())
	}
	if got := l.Length(); got != 9.5 {
		t.Errorf("Length() = %v, expected 9.5", got)
	}
}
