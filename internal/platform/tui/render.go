package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rollhigh/internal/core"
)

// Colors are ANSI indexes or hex strings, which lipgloss.Color accepts
// alike. Platform hues are computed per frame, so styles are built lazily.
var (
	stylesMu     sync.Mutex
	colorStyles  = map[core.Color]lipgloss.Style{}
	defaultStyle = lipgloss.NewStyle()
)

// styleFor returns the cached foreground style for c.
func styleFor(c core.Color) lipgloss.Style {
	if c == core.ColorDefault {
		return defaultStyle
	}

	stylesMu.Lock()
	defer stylesMu.Unlock()

	style, ok := colorStyles[c]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
		colorStyles[c] = style
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
