package roller

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollhigh/internal/world"
)

// Snapshot is everything the renderer needs for one frame. It is taken
// after Step returns; Platforms aliases the level and must not be modified.
type Snapshot struct {
	Position  mgl64.Vec3
	Radius    float64
	RotationX float64
	RotationZ float64

	Platforms []world.Platform

	Alive      bool
	Paused     bool
	Score      float64
	LastScore  float64
	Deaths     int
	DeathTimer float64
	Seed       int64
}

// Snapshot returns the current frame.
func (g *Game) Snapshot() Snapshot {
	st := g.machine.State()
	return Snapshot{
		Position:  g.sphere.Position,
		Radius:    g.sphere.Radius,
		RotationX: g.sphere.RotationX,
		RotationZ: g.sphere.RotationZ,

		Platforms: g.level.Platforms(),

		Alive:      g.machine.Alive(),
		Paused:     g.paused,
		Score:      st.Score,
		LastScore:  st.LastScore,
		Deaths:     st.Deaths,
		DeathTimer: st.DeathTimer,
		Seed:       g.level.Seed,
	}
}
