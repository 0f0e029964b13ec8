package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/become-pm/internal/core"
)

// cellStyle is the part of a cell that decides its escape sequence.
type cellStyle struct {
	fg, bg core.Color
	dim    bool
}

// style builds the lipgloss style for a cell look.
func (c cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if !c.fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if !c.bg.IsDefault() {
		s = s.Background(lipgloss.Color(c.bg.Hex()))
	}
	if c.dim {
		s = s.Faint(true)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same look to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same look for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Color, bg: cell.Bg, dim: cell.Dim}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Color, bg: cell.Bg, dim: cell.Dim}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = start.style()
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
