package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/become-pm/internal/core"
)

const (
	appTitle    = "Become PM in Biiiiig Company"
	appSubtitle = "frame engine prototype"
)

// menuView renders the title screen with the content picker.
func (m App) menuView() string {
	if m.showHistory {
		return m.historyScreen()
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render(appTitle), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuSubtitle.Render(appSubtitle), m.width))
	b.WriteString("\n\n")

	// Content list
	if len(m.contents) == 0 {
		b.WriteString(centerText(m.theme.Error.Render("No content registered"), m.width))
		b.WriteString("\n")
	}
	for i, item := range m.contents {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+item.Title), m.width))
		b.WriteString("\n")
	}

	// High score from the saved record
	b.WriteString("\n")
	if data, ok := m.repo.Load(); ok {
		line := m.theme.StatLabel.Render("High score: ") + m.theme.StatValue.Render(fmt.Sprintf("%.0f", data.HighScore))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.messages())
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// historyScreen renders the session table in place of the picker.
func (m App) historyScreen() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.history.view(m.theme))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("up/down: scroll  |  tab: back  |  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// sessionView renders the stat panel, the surface and any overlay.
func (m App) sessionView() string {
	var b strings.Builder

	b.WriteString(m.theme.MenuTitle.Render(appTitle))
	b.WriteString("  ")
	b.WriteString(m.theme.MenuSubtitle.Render(m.content.Title()))
	b.WriteString("\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n")

	b.WriteString(m.theme.Frame.Render(RenderScreen(m.screen)))
	b.WriteString("\n")

	if overlay := m.overlay(); overlay != "" {
		b.WriteString(overlay)
		b.WriteString("\n")
	}

	b.WriteString(m.messages())
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// statsLine renders score, level, high score and FPS.
func (m App) statsLine() string {
	sep := m.theme.StatSeparator.Render("  |  ")
	stat := func(label, value string) string {
		return m.theme.StatLabel.Render(label+": ") + m.theme.StatValue.Render(value)
	}

	data := m.state.GameData()
	return strings.Join([]string{
		stat("Score", fmt.Sprintf("%.0f", data.Score)),
		stat("Level", fmt.Sprintf("%d", data.Level)),
		stat("High score", fmt.Sprintf("%.0f", data.HighScore)),
		stat("FPS", fmt.Sprintf("%d", m.eng.FPS())),
		stat("Engine", m.eng.State().String()),
	}, sep)
}

// overlay renders the paused or ended box.
func (m App) overlay() string {
	switch m.status {
	case core.StatusPaused:
		return m.theme.OverlayBorder.Render(m.theme.OverlayTitle.Render("PAUSED"))

	case core.StatusEnded:
		lines := []string{
			m.theme.OverlayTitle.Render("GAME OVER"),
			m.theme.OverlayText.Render(fmt.Sprintf("Final score: %.0f", m.state.Score())),
		}
		if m.newRecord {
			lines = append(lines, m.theme.Record.Render("New record!"))
		}
		return m.theme.OverlayBorder.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	}
	return ""
}

// messages renders the last error and flash line, if any.
func (m App) messages() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.theme.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.flash != "" {
		b.WriteString(m.theme.Flash.Render(m.flash))
		b.WriteString("\n")
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
