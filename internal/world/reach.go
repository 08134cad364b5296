package world

import "math"

// Motion is the subset of the sphere's physics that decides how far a
// single jump can carry it.
type Motion struct {
	Speed     float64 // per-axis horizontal speed
	Gravity   float64
	JumpForce float64
}

// PeakHeight returns how far above the takeoff point a jump from rest rises.
func (m Motion) PeakHeight() float64 {
	return m.JumpForce * m.JumpForce / (2 * m.Gravity)
}

// AirTime returns how long a jump stays in the air before coming back down
// to a surface rise units above the takeoff surface. ok is false when the
// surface is above the jump's apex.
func (m Motion) AirTime(rise float64) (t float64, ok bool) {
	disc := m.JumpForce*m.JumpForce - 2*m.Gravity*rise
	if disc < 0 {
		return 0, false
	}
	return (m.JumpForce + math.Sqrt(disc)) / m.Gravity, true
}

// Reachable reports whether a single jump can carry the sphere from any
// point on from's top to some point on to's top. X and Z movement are
// independent, so each axis gap is checked against speed times air time.
func (m Motion) Reachable(from, to Platform) bool {
	t, ok := m.AirTime(to.Top() - from.Top())
	if !ok {
		return false
	}
	reach := m.Speed * t
	return axisGap(from.Left(), from.Right(), to.Left(), to.Right()) <= reach &&
		axisGap(from.Back(), from.Front(), to.Back(), to.Front()) <= reach
}

// axisGap is the empty distance between [a0, a1] and [b0, b1], 0 on overlap.
func axisGap(a0, a1, b0, b1 float64) float64 {
	return math.Max(0, math.Max(b0-a1, a0-b1))
}

// Unreachable returns the indices of platforms that cannot be reached by a
// single jump from their predecessor. Generation never consults this; it is
// a diagnostic for tuning.
func (l *Level) Unreachable(m Motion) []int {
	var out []int
	for i := 1; i < len(l.platforms); i++ {
		if !m.Reachable(l.platforms[i-1], l.platforms[i]) {
			out = append(out, i)
		}
	}
	return out
}
