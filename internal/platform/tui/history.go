package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rollhigh/internal/storage"
)

// maxRuns is how many runs the history view loads.
const maxRuns = 100

// historyView lists this session's runs of one mode, newest first.
type historyView struct {
	table table.Model
	runs  []storage.Run
	stats storage.Stats
	err   error
}

func newHistoryView(width, height int) historyView {
	h := historyView{}
	h.table = h.createTable(width, height)
	return h
}

// createTable creates a new table sized to the terminal.
func (h *historyView) createTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Distance", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Ended", Width: 10},
	}
	if width < 70 {
		columns[3].Width = 10
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)), // title, stats, borders and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resize rebuilds the table for a new terminal size.
func (h *historyView) resize(width, height int) {
	h.table = h.createTable(width, height)
	h.updateRows()
}

// load reads the runs of mode from store. A nil store shows an empty list.
func (h *historyView) load(store *storage.Store, mode string) {
	h.runs, h.stats, h.err = nil, storage.Stats{}, nil
	if store != nil {
		h.runs, h.err = store.RecentRuns(mode, maxRuns)
		if h.err == nil {
			h.stats, h.err = store.Stats(mode)
		}
	}
	h.updateRows()
}

// updateRows numbers runs from the oldest, so run 1 is the first fall.
func (h *historyView) updateRows() {
	rows := make([]table.Row, len(h.runs))
	for i, r := range h.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", len(h.runs)-i),
			fmt.Sprintf("%.1f", r.Distance),
			fmt.Sprintf("%.1fs", r.Duration),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// update passes scrolling keys to the table.
func (h historyView) update(msg tea.Msg) (historyView, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// view renders the history screen.
func (h historyView) view(title string, width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUNS - "+title, width)))
	b.WriteString("\n\n")

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if h.stats.Runs > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d runs   best %.1f   average %.1f   time alive %.0fs",
			h.stats.Runs, h.stats.Best, h.stats.Average, h.stats.TimeAlive)))
		b.WriteString("\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case h.err != nil:
		b.WriteString(boxStyle.Render(fmt.Sprintf("Run log unavailable: %v", h.err)))
	case len(h.runs) == 0:
		emptyStyle := mutedStyle.Italic(true).Padding(1, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs yet.\nFall off a platform to record one!")))
	default:
		b.WriteString(boxStyle.Render(h.table.View()))
	}

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
