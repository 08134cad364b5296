package roller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Chase camera placement, in world units and degrees.
const (
	CameraHeight   = 7.0
	CameraDistance = 8.0
	CameraFovY     = 45.0

	cellAspect = 2.0 // a terminal cell is about twice as tall as it is wide
	nearPlane  = 0.1
	farPlane   = 1000.0
)

// Camera is a perspective camera over a width x height cell grid.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3

	view mgl64.Mat4
	proj mgl64.Mat4
	inv  mgl64.Mat4 // inverse of proj*view

	width  int
	height int
}

// NewChaseCamera places the camera at a fixed height behind target, on the
// same X, looking at it.
func NewChaseCamera(target mgl64.Vec3, width, height int) Camera {
	eye := mgl64.Vec3{target.X(), CameraHeight, target.Z() - CameraDistance}
	aspect := float64(width) / (float64(height) * cellAspect)

	view := mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(mgl64.DegToRad(CameraFovY), aspect, nearPlane, farPlane)

	return Camera{
		Eye:    eye,
		Target: target,
		view:   view,
		proj:   proj,
		inv:    proj.Mul4(view).Inv(),
		width:  width,
		height: height,
	}
}

// Ray returns the unit direction through the center of cell (cx, cy).
// Row 0 is the top of the screen.
func (c Camera) Ray(cx, cy int) mgl64.Vec3 {
	x := 2*(float64(cx)+0.5)/float64(c.width) - 1
	y := 1 - 2*(float64(cy)+0.5)/float64(c.height)

	near := c.inv.Mul4x1(mgl64.Vec4{x, y, -1, 1})
	far := c.inv.Mul4x1(mgl64.Vec4{x, y, 1, 1})
	n := near.Vec3().Mul(1 / near.W())
	f := far.Vec3().Mul(1 / far.W())
	return f.Sub(n).Normalize()
}

// Project returns the cell p falls on. ok is false when p is behind the
// camera or off screen.
func (c Camera) Project(p mgl64.Vec3) (cx, cy int, ok bool) {
	if c.view.Mul4x1(p.Vec4(1)).Z() >= 0 {
		return 0, 0, false
	}
	win := mgl64.Project(p, c.view, c.proj, 0, 0, c.width, c.height)
	cx = int(math.Floor(win.X()))
	cy = c.height - 1 - int(math.Floor(win.Y()))
	ok = cx >= 0 && cx < c.width && cy >= 0 && cy < c.height
	return cx, cy, ok
}
