// Package world holds the static level geometry: platforms, the level that
// owns them, and the procedural generator that lays them out.
package world

import "github.com/go-gl/mathgl/mgl64"

// Platform is a static axis-aligned box. Y is up, Z is forward and X is
// lateral.
type Platform struct {
	Width  float64 // extent along X
	Height float64 // extent along Y
	Length float64 // extent along Z
	Center mgl64.Vec3
}

// Left returns the smallest X covered by the platform.
func (p Platform) Left() float64 { return p.Center.X() - p.Width/2 }

// Right returns the largest X covered by the platform.
func (p Platform) Right() float64 { return p.Center.X() + p.Width/2 }

// Back returns the smallest Z covered by the platform.
func (p Platform) Back() float64 { return p.Center.Z() - p.Length/2 }

// Front returns the largest Z covered by the platform.
func (p Platform) Front() float64 { return p.Center.Z() + p.Length/2 }

// Top returns the Y of the landing surface.
func (p Platform) Top() float64 { return p.Center.Y() + p.Height/2 }

// Bottom returns the Y of the underside.
func (p Platform) Bottom() float64 { return p.Center.Y() - p.Height/2 }

// ContainsXZ reports whether pos lies over the platform's top face.
// Bounds are inclusive and the Y coordinate is ignored.
func (p Platform) ContainsXZ(pos mgl64.Vec3) bool {
	return pos.X() >= p.Left() &&
		pos.X() <= p.Right() &&
		pos.Z() >= p.Back() &&
		pos.Z() <= p.Front()
}
