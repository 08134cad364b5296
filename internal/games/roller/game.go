// Package roller implements Roll High or Die: a sphere rolling forward over
// an endless run of floating platforms. Falling below the death threshold
// ends the run; a moment later the sphere respawns on the first platform.
package roller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rollhigh/internal/config"
	"github.com/vovakirdan/rollhigh/internal/core"
	"github.com/vovakirdan/rollhigh/internal/physics"
	"github.com/vovakirdan/rollhigh/internal/registry"
	"github.com/vovakirdan/rollhigh/internal/run"
	"github.com/vovakirdan/rollhigh/internal/world"
)

// Mode IDs.
const (
	ModeClassic = "classic"
	ModeSteady  = "steady"
)

// Game wires the generator, integrator, resolver and run state machine
// into one frame.
type Game struct {
	id    string
	title string

	cfg       config.RollerConfig
	params    physics.Params
	tolerance float64
	gen       *world.Generator
	level     *world.Level

	sphere  physics.Sphere
	machine *run.Machine
	paused  bool

	runtime core.RuntimeConfig
	logger  *log.Logger
}

// New validates cfg and creates a game with a level generated from seed 0.
// Call Reset to pick the real seed. A nil logger discards.
func New(id, title string, cfg config.RollerConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := world.NewGenerator(cfg.GenParams())
	if err != nil {
		return nil, fmt.Errorf("roller: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		id:        id,
		title:     title,
		cfg:       cfg,
		params:    cfg.PhysicsParams(),
		tolerance: cfg.Collision.LandingTolerance,
		gen:       gen,
		machine:   run.NewMachine(cfg.RunParams()),
		runtime:   core.DefaultConfig(),
		logger:    logger,
	}
	g.Reset(g.runtime)
	return g, nil
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset regenerates the level from rc.Seed, puts the sphere on the spawn
// platform and forgets every previous run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	level, err := g.gen.Generate(g.cfg.Level.Count, rc.Seed)
	if err != nil {
		// Count is validated in New, so this only keeps the old level.
		g.logger.Error("level generation failed", "seed", rc.Seed, "error", err)
	} else {
		g.level = level
	}

	g.sphere = physics.Sphere{
		Position: g.level.Spawn(g.cfg.Physics.Radius),
		Radius:   g.cfg.Physics.Radius,
		OnGround: true,
	}
	g.machine.Reset()
	g.paused = false

	g.logger.Debug("level ready",
		"mode", g.id,
		"seed", rc.Seed,
		"platforms", g.level.Len(),
		"length", fmt.Sprintf("%.1f", g.level.Length()))
}

// Step advances the game by one frame of length dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	secs := dt.Seconds()
	if secs < 0 {
		secs = 0
	}

	if g.machine.Alive() {
		g.sphere = physics.Step(g.sphere, intentsFrom(in), secs, g.params)
		g.sphere, _ = physics.Resolve(g.sphere, g.level.Platforms(), g.tolerance)
	}

	var ev run.Event
	g.sphere, ev = g.machine.Update(g.sphere, g.level.Spawn(g.sphere.Radius), secs)

	st := g.machine.State()
	if ev.Has(run.EventDied) {
		g.logger.Debug("run ended",
			"distance", fmt.Sprintf("%.1f", st.LastScore),
			"time", fmt.Sprintf("%.2fs", st.LastRunTime),
			"deaths", st.Deaths)
	}
	if ev.Has(run.EventRespawned) {
		g.logger.Debug("respawned", "spawn", g.sphere.Position)
	}

	return core.StepResult{
		State: g.State(),
		Died:  ev.Has(run.EventDied),
	}
}

// intentsFrom maps platform actions onto physics intents.
func intentsFrom(in core.InputFrame) physics.Intents {
	return physics.Intents{
		Forward: in.Has(core.ActionForward),
		Back:    in.Has(core.ActionBack),
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Jump:    in.Has(core.ActionJump),
	}
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	st := g.machine.State()
	return core.GameState{
		Score:       st.Score,
		LastScore:   st.LastScore,
		Alive:       st.Phase == run.Alive,
		Deaths:      st.Deaths,
		Paused:      g.paused,
		RunTime:     st.RunTime,
		LastRunTime: st.LastRunTime,
	}
}

// Sphere returns the player body.
func (g *Game) Sphere() physics.Sphere {
	return g.sphere
}

// Level returns the current level. Callers must not modify it.
func (g *Game) Level() *world.Level {
	return g.level
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.RollerConfig {
	return g.cfg
}

func init() {
	registry.Register(registry.ModeInfo{
		ID:          ModeClassic,
		Title:       "Roll High or Die",
		Description: "gaps widen the further you roll",
	}, func(opts registry.Options) (registry.Game, error) {
		return newMode(ModeClassic, "Roll High or Die", opts.Config, opts.Logger)
	})

	registry.Register(registry.ModeInfo{
		ID:          ModeSteady,
		Title:       "Roll High or Die (Steady)",
		Description: "every gap is drawn from the starting range",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg := opts.Config
		config.ApplyPreset(&cfg, config.DifficultyFixed)
		return newMode(ModeSteady, "Roll High or Die (Steady)", cfg, opts.Logger)
	})
}

// newMode keeps a failed construction from becoming a non-nil interface.
func newMode(id, title string, cfg config.RollerConfig, logger *log.Logger) (registry.Game, error) {
	g, err := New(id, title, cfg, logger)
	if err != nil {
		return nil, err
	}
	return g, nil
}
