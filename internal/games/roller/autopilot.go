package roller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollhigh/internal/core"
	"github.com/vovakirdan/rollhigh/internal/physics"
	"github.com/vovakirdan/rollhigh/internal/world"
)

// Autopilot tuning.
const (
	edgeMargin  = 0.3  // distance kept from platform edges
	reachFactor = 0.85 // share of the theoretical jump reach trusted early
)

// Autopilot plays the game headless: it hops from platform to platform,
// steering in the air toward the center of the next one. It only sees
// what a player sees and produces ordinary input frames.
type Autopilot struct {
	motion world.Motion
	next   int
}

// NewAutopilot creates an autopilot for the given jump envelope.
func NewAutopilot(m world.Motion) *Autopilot {
	return &Autopilot{motion: m, next: 1}
}

// Next returns the index of the platform being aimed at.
func (a *Autopilot) Next() int {
	return a.next
}

// Decide returns the input for the next frame of length dt.
func (a *Autopilot) Decide(s physics.Sphere, level *world.Level, dt float64) core.InputFrame {
	if s.OnGround {
		switch {
		case a.next < level.Len() && standsOn(s, level.At(a.next)):
			a.next++
		case standsOn(s, level.At(0)):
			a.next = 1
		}
	}
	if a.next >= level.Len() {
		return core.NewInputFrame()
	}

	target := level.At(a.next)
	step := a.motion.Speed * dt

	if !s.OnGround {
		return steer(s.Position, target.Center, step)
	}

	from := level.At(a.next - 1)
	goal := mgl64.Vec3{
		core.ClampF(target.Center.X(), from.Left()+edgeMargin, from.Right()-edgeMargin),
		s.Position.Y(),
		core.ClampF(target.Center.Z(), from.Back()+edgeMargin, from.Front()-edgeMargin),
	}
	in := steer(s.Position, goal, step)

	atEdge := len(in.Actions) == 0
	if atEdge || a.inReach(s.Position, from, target) {
		in.Set(core.ActionJump)
	}
	return in
}

// inReach reports whether a jump from pos comfortably clears the distance
// to the inner part of target on both axes.
func (a *Autopilot) inReach(pos mgl64.Vec3, from, target world.Platform) bool {
	t, ok := a.motion.AirTime(target.Top() - from.Top())
	if !ok {
		return false
	}
	reach := a.motion.Speed * t * reachFactor
	dx := pointGap(pos.X(), target.Left()+edgeMargin, target.Right()-edgeMargin)
	dz := pointGap(pos.Z(), target.Back()+edgeMargin, target.Front()-edgeMargin)
	return dx <= reach && dz <= reach
}

// steer presses the keys that move pos toward goal, ignoring axes already
// within one step. Left moves toward +X.
func steer(pos, goal mgl64.Vec3, step float64) core.InputFrame {
	in := core.NewInputFrame()
	if dz := goal.Z() - pos.Z(); dz > step {
		in.Set(core.ActionForward)
	} else if dz < -step {
		in.Set(core.ActionBack)
	}
	if dx := goal.X() - pos.X(); dx > step {
		in.Set(core.ActionLeft)
	} else if dx < -step {
		in.Set(core.ActionRight)
	}
	return in
}

func standsOn(s physics.Sphere, p world.Platform) bool {
	return p.ContainsXZ(s.Position) && math.Abs(s.Bottom()-p.Top()) < 1e-6
}

func pointGap(v, lo, hi float64) float64 {
	return math.Max(0, math.Max(lo-v, v-hi))
}
