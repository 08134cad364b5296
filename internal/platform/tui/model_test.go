package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rollhigh/internal/core"
	"github.com/vovakirdan/rollhigh/internal/storage"
)

// fakeGame records every frame it is given.
type fakeGame struct {
	frames  []core.InputFrame
	dts     []time.Duration
	dieNext bool
	state   core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.state = core.GameState{Alive: true} }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "FAKE FRAME") }

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.frames = append(g.frames, in)
	g.dts = append(g.dts, dt)
	if g.dieNext {
		g.dieNext = false
		g.state.Alive = false
		g.state.Deaths++
		g.state.LastScore = 12.5
		g.state.LastRunTime = 3.25
		return core.StepResult{State: g.state, Died: true}
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) lastFrame() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

var t0 = time.Unix(5000, 0)

func newTestModel(t *testing.T, store *storage.Store) (Model, *fakeGame) {
	t.Helper()
	g := &fakeGame{}
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	m := NewModel(g, store, cfg, DefaultOptions())
	m.now = func() time.Time { return t0 }
	m.Init()
	return m, g
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelFirstTickUsesNominalInterval(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(m, TickMsg(t0))
	m = update(m, TickMsg(t0.Add(25*time.Millisecond)))
	m = update(m, TickMsg(t0.Add(125*time.Millisecond)))

	want := []time.Duration{time.Second / 60, 25 * time.Millisecond, 100 * time.Millisecond}
	for i, dt := range want {
		if g.dts[i] != dt {
			t.Errorf("frame %d dt = %v, expected %v", i, g.dts[i], dt)
		}
	}
}

func TestModelHoldsMovementKeys(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(m, runeKey('w'))
	m = update(m, TickMsg(t0.Add(10*time.Millisecond)))
	if !g.lastFrame().Has(core.ActionForward) {
		t.Error("Expected forward to be held right after the press")
	}

	m = update(m, TickMsg(t0.Add(600*time.Millisecond)))
	if g.lastFrame().Has(core.ActionForward) {
		t.Error("Expected forward to be released without repeats")
	}
}

func TestModelJumpIsEdgeTriggered(t *testing.T) {
	m, g := newTestModel(t, nil)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m = update(m, space)
	m = update(m, TickMsg(t0.Add(10*time.Millisecond)))
	if !g.lastFrame().Has(core.ActionJump) {
		t.Fatal("Expected a jump on the frame after the press")
	}

	m = update(m, TickMsg(t0.Add(20*time.Millisecond)))
	if g.lastFrame().Has(core.ActionJump) {
		t.Error("Jump should last a single frame")
	}

	// An auto-repeat while the key is held is not a new jump.
	m = update(m, space)
	m = update(m, TickMsg(t0.Add(30*time.Millisecond)))
	if g.lastFrame().Has(core.ActionJump) {
		t.Error("Auto-repeat should not jump again")
	}
}

func TestModelJumpPressedAgainSoonAfter(t *testing.T) {
	m, g := newTestModel(t, nil)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m = update(m, space)
	m = update(m, TickMsg(t0.Add(10*time.Millisecond)))

	// Released and pressed again once the sphere has landed, well inside
	// the initial hold window of movement keys.
	m.now = func() time.Time { return t0.Add(300 * time.Millisecond) }
	m = update(m, space)
	m = update(m, TickMsg(t0.Add(310*time.Millisecond)))
	if !g.lastFrame().Has(core.ActionJump) {
		t.Error("A second press after the repeat window should jump")
	}
}

func TestModelRecordsRunOnDeath(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, store)
	g.dieNext = true
	m = update(m, TickMsg(t0))
	update(m, TickMsg(t0.Add(time.Second/60)))

	runs, err := store.RecentRuns("fake", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected exactly 1 run, got %d", len(runs))
	}
	if runs[0].Distance != 12.5 || runs[0].Duration != 3.25 || runs[0].Seed != 99 {
		t.Errorf("Unexpected run: %+v", runs[0])
	}
}

func TestModelHistoryFreezesGame(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showHistory {
		t.Fatal("Tab should open the history")
	}
	m = update(m, TickMsg(t0))
	if len(g.frames) != 0 {
		t.Error("Game should not step while the history is open")
	}
	if !strings.Contains(m.View(), "No runs yet") {
		t.Error("Expected the empty history message")
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHistory {
		t.Error("Esc should close the history")
	}
	m = update(m, TickMsg(t0.Add(time.Second/60)))
	if len(g.frames) != 1 {
		t.Errorf("Expected the game to resume, got %d frames", len(g.frames))
	}
}

func TestModelPauseKeyReachesGame(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(m, runeKey('p'))
	update(m, TickMsg(t0))
	if !g.lastFrame().Has(core.ActionPause) {
		t.Error("Expected the pause action on the next frame")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("Expected an empty view after quitting")
	}
}

func TestModelViewShowsGameAndHelp(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	if !strings.Contains(view, "FAKE FRAME") {
		t.Error("Expected the game frame in the view")
	}
	if !strings.Contains(view, "jump") {
		t.Error("Expected the help bar in the view")
	}
	if m.screen.Height() != 29 {
		t.Errorf("Expected one line reserved for help, got screen height %d", m.screen.Height())
	}
}
