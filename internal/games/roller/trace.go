package roller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollhigh/internal/world"
)

// raySphere returns the distance along the unit ray (o, d) to the nearest
// intersection with the sphere in front of o.
func raySphere(o, d, center mgl64.Vec3, r float64) (float64, bool) {
	oc := o.Sub(center)
	b := oc.Dot(d)
	c := oc.Dot(oc) - r*r
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// rayBox intersects the ray with a platform using the slab method and
// reports which face was entered. Rays starting inside the box miss.
func rayBox(o, d mgl64.Vec3, p world.Platform) (float64, Face, bool) {
	lo := mgl64.Vec3{p.Left(), p.Bottom(), p.Back()}
	hi := mgl64.Vec3{p.Right(), p.Top(), p.Front()}

	tNear, tFar := math.Inf(-1), math.Inf(1)
	axis := -1
	for a := 0; a < 3; a++ {
		if math.Abs(d[a]) < 1e-12 {
			if o[a] < lo[a] || o[a] > hi[a] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo[a] - o[a]) / d[a]
		t2 := (hi[a] - o[a]) / d[a]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear, axis = t1, a
		}
		tFar = math.Min(tFar, t2)
		if tNear > tFar || tFar < 0 {
			return 0, 0, false
		}
	}
	if axis < 0 || tNear < 0 {
		return 0, 0, false
	}

	switch {
	case axis == 1 && d[1] < 0:
		return tNear, FaceTop, true
	case axis == 1:
		return tNear, FaceBottom, true
	case axis == 2:
		return tNear, FaceFront, true
	default:
		return tNear, FaceSide, true
	}
}

// rayGround intersects the ray with the y = 0 plane.
func rayGround(o, d mgl64.Vec3) (float64, bool) {
	if d.Y() >= 0 {
		return 0, false
	}
	t := -o.Y() / d.Y()
	if t < 0 {
		return 0, false
	}
	hit := o.Add(d.Mul(t))
	if math.Abs(hit.X()) > GroundHalfSize || math.Abs(hit.Z()) > GroundHalfSize {
		return 0, false
	}
	return t, true
}
