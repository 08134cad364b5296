package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rollhigh/internal/core"
	"github.com/vovakirdan/rollhigh/internal/registry"
	"github.com/vovakirdan/rollhigh/internal/storage"
)

// Options tunes the play loop.
type Options struct {
	HoldInitial time.Duration // how long a fresh key press counts as held
	HoldRepeat  time.Duration // how long an auto-repeat extends it
	Logger      *log.Logger   // nil discards
}

// DefaultOptions matches the default configuration.
func DefaultOptions() Options {
	return Options{
		HoldInitial: 550 * time.Millisecond,
		HoldRepeat:  120 * time.Millisecond,
	}
}

// Model is the Bubble Tea model for playing one mode.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	pending  core.InputFrame // one-shot actions for the next frame
	history  historyView
	logger   *log.Logger
	now      func() time.Time
	lastTick time.Time
	width    int
	height   int

	showHistory bool
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:   store,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		held:    NewHeldKeys(opts.HoldInitial, opts.HoldRepeat),
		pending: core.NewInputFrame(),
		history: newHistoryView(cfg.ScreenW, cfg.ScreenH),
		logger:  logger,
		now:     time.Now,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHistory:
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.history.load(m.store, m.game.ID())
		}
		m.held.Release()
		return m, nil
	}

	if m.showHistory {
		if action == core.ActionPause {
			m.showHistory = false
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.update(msg)
		return m, cmd
	}

	switch {
	case action.IsMovement():
		m.held.Press(action, m.now())
	case action == core.ActionJump:
		// Auto-repeats of a held jump key are not new jumps.
		if m.held.Tap(action, m.now()) {
			m.pending.Set(core.ActionJump)
		}
	case action == core.ActionPause:
		m.pending.Set(core.ActionPause)
	}

	return m, nil
}

// handleResize processes window resize events. The level does not depend
// on the screen size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0)) // last line is the help bar
	m.help.Width = msg.Width
	m.history.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame with the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.showHistory {
		return m, tickCmd(m.config.TickRate)
	}

	in := m.held.Frame(now)
	for a, on := range m.pending.Actions {
		if on {
			in.Set(a)
		}
	}
	m.pending.Clear()

	result := m.game.Step(in, dt)
	if result.Died {
		m.recordRun(result.State)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the run that just ended. Failures are logged and the
// game continues without a run log entry.
func (m Model) recordRun(st core.GameState) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Mode:     m.game.ID(),
		Seed:     m.config.Seed,
		Distance: st.LastScore,
		Duration: st.LastRunTime,
	})
	if err != nil {
		m.logger.Warn("run not recorded", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.showHistory {
		return m.history.view(m.game.Title(), m.width) + "\n" + helpStyle.Render(m.help.View(m.keys))
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Seed returns the seed the level was generated from.
func (m Model) Seed() int64 {
	return m.config.Seed
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the seed that was played.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (int64, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return model.Seed(), err
}
