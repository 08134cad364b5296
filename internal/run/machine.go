// Package run tracks whether the current run is alive, when it ended and
// how far it got.
package run

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rollhigh/internal/physics"
)

// ErrInvalidParams is returned for an unusable threshold or delay.
var ErrInvalidParams = errors.New("run: invalid parameters")

// Phase is the run's lifecycle state.
type Phase int

const (
	Alive Phase = iota
	Dead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Event reports the transitions taken during one Update.
// A zero-delay respawn can report both in the same frame.
type Event uint8

const (
	EventDied Event = 1 << iota
	EventRespawned

	EventNone Event = 0
)

// Has reports whether e includes other.
func (e Event) Has(other Event) bool {
	return e&other != 0
}

// Params configures death and respawn.
type Params struct {
	DeathThreshold float64 // the run ends once the sphere's Y is at or below this
	RespawnDelay   float64 // seconds spent dead before respawning
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		DeathThreshold: -5,
		RespawnDelay:   1,
	}
}

// Validate checks the threshold is finite and the delay is a finite
// non-negative duration.
func (p Params) Validate() error {
	if math.IsNaN(p.DeathThreshold) || math.IsInf(p.DeathThreshold, 0) {
		return fmt.Errorf("%w: death threshold must be finite, got %v", ErrInvalidParams, p.DeathThreshold)
	}
	if math.IsNaN(p.RespawnDelay) || math.IsInf(p.RespawnDelay, 0) || p.RespawnDelay < 0 {
		return fmt.Errorf("%w: respawn delay must be finite and non-negative, got %v", ErrInvalidParams, p.RespawnDelay)
	}
	return nil
}

// State is a read-only view of the machine.
type State struct {
	Phase      Phase
	DeathTimer float64 // seconds since the last death, meaningful while Dead
	Score      float64 // forward coordinate of the sphere during this run
	LastScore  float64 // Score frozen at the last death
	Deaths     int

	RunTime     float64 // seconds alive in the current run
	LastRunTime float64 // RunTime frozen at the last death
}

// Machine is the Alive/Dead state machine. The zero value is not usable;
// create one with NewMachine.
type Machine struct {
	params Params
	state  State
}

// NewMachine returns a machine in the Alive phase with a zero score.
func NewMachine(p Params) *Machine {
	return &Machine{params: p}
}

// Reset returns to the initial Alive state and forgets all history.
func (m *Machine) Reset() {
	m.state = State{}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Alive reports whether the run is in progress.
func (m *Machine) Alive() bool {
	return m.state.Phase == Alive
}

// Update evaluates one frame. s must already be integrated and resolved
// for this frame while alive; while dead the caller must leave it frozen.
//
// While alive the score follows the sphere's Z, so moving back lowers it.
// Crossing the death threshold latches Dead once. After more than
// RespawnDelay seconds dead the sphere is put back at spawn, at rest and
// grounded, and a new run starts from a zero score.
func (m *Machine) Update(s physics.Sphere, spawn mgl64.Vec3, dt float64) (physics.Sphere, Event) {
	ev := EventNone

	if m.state.Phase == Alive {
		m.state.Score = s.Position.Z()
		m.state.RunTime += dt

		if s.Position.Y() <= m.params.DeathThreshold {
			m.state.Phase = Dead
			m.state.DeathTimer = 0
			m.state.LastScore = m.state.Score
			m.state.LastRunTime = m.state.RunTime
			m.state.Deaths++
			ev |= EventDied
		}
	}

	if m.state.Phase == Dead {
		m.state.DeathTimer += dt

		if m.state.DeathTimer > m.params.RespawnDelay {
			s.Position = spawn
			s.VelocityY = 0
			s.OnGround = true

			m.state.Phase = Alive
			m.state.Score = 0
			m.state.RunTime = 0
			ev |= EventRespawned
		}
	}

	return s, ev
}
