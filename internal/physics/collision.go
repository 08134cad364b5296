package physics

import "github.com/vovakirdan/rollhigh/internal/world"

// DefaultLandingTolerance is how far below a platform top the sphere's
// bottom may already be and still count as landing on it.
const DefaultLandingTolerance = 0.4

// Resolve tests s against platforms in order and settles it on the first
// one it is landing on. A platform catches the sphere only while it is
// falling or resting, its center is over the top face, and its bottom lies
// within [top-tolerance, top]. Sides are never collided with.
//
// OnGround is recomputed from scratch; the returned bool mirrors it.
func Resolve(s Sphere, platforms []world.Platform, tolerance float64) (Sphere, bool) {
	s.OnGround = false
	if s.VelocityY > 0 {
		return s, false
	}

	bottom := s.Bottom()
	for i := range platforms {
		p := &platforms[i]
		top := p.Top()
		if bottom > top || bottom < top-tolerance {
			continue
		}
		if !p.ContainsXZ(s.Position) {
			continue
		}

		s.Position[1] = top + s.Radius
		s.VelocityY = 0
		s.OnGround = true
		break
	}

	return s, s.OnGround
}
