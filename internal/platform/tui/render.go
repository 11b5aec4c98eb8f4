package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// styleFor returns the lipgloss style for a palette color.
func styleFor(c core.Color) lipgloss.Style {
	if code := c.ANSI(); code != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string, one style per
// run of equally colored cells.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}

			style, ok := styles[color]
			if !ok {
				style = styleFor(color)
				styles[color] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// footerRows is the number of terminal rows reserved below the game screen.
const footerRows = 1

// RenderFooter returns the key hint line shown under the game.
func RenderFooter(width int, state core.GameState, inSession bool) string {
	hint := "←/→ move  enter pause  ctrl+s shot  q quit"
	if state.Paused && inSession {
		hint = "enter resume  esc menu  q quit"
	}
	if len([]rune(hint)) > width && width > 0 {
		hint = string([]rune(hint)[:width])
	}
	return footerStyle.Render(hint)
}

// RenderError formats a fatal simulation error for the last frame.
func RenderError(err error) string {
	return errorStyle.Render("simulation stopped: " + err.Error())
}
