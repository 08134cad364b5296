package world

import "github.com/go-gl/mathgl/mgl64"

// Level owns the ordered platform sequence produced by a Generator.
// Platforms are read-only once generated; index 0 is the spawn platform.
type Level struct {
	Seed      int64
	platforms []Platform
}

// NewLevel wraps an already laid out platform sequence. It is mainly
// useful for tests and hand-built courses; the slice is copied.
func NewLevel(seed int64, platforms []Platform) *Level {
	ps := make([]Platform, len(platforms))
	copy(ps, platforms)
	return &Level{Seed: seed, platforms: ps}
}

// Platforms returns the platforms in generation order.
// Callers must not modify the returned slice.
func (l *Level) Platforms() []Platform {
	return l.platforms
}

// Len returns the number of platforms.
func (l *Level) Len() int {
	return len(l.platforms)
}

// At returns the platform at index i.
func (l *Level) At(i int) Platform {
	return l.platforms[i]
}

// SpawnPlatform returns platform 0.
func (l *Level) SpawnPlatform() Platform {
	return l.platforms[0]
}

// Spawn returns the resting position of a sphere with the given radius on
// top of the spawn platform.
func (l *Level) Spawn(radius float64) mgl64.Vec3 {
	p := l.platforms[0]
	return mgl64.Vec3{p.Center.X(), p.Top() + radius, p.Center.Z()}
}

// Length returns the forward distance from the spawn center to the front
// edge of the last platform.
func (l *Level) Length() float64 {
	if len(l.platforms) == 0 {
		return 0
	}
	last := l.platforms[len(l.platforms)-1]
	return last.Front() - l.platforms[0].Center.Z()
}
