package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/become-pm/internal/storage"
)

// maxSessions is how many sessions the history view loads.
const maxSessions = 50

// SessionStore records and lists finished sessions. *storage.Store
// implements it.
type SessionStore interface {
	SaveSession(contentID string, score float64, level int, duration time.Duration) (string, error)
	TopSessions(contentID string, limit int) ([]storage.Session, error)
}

// historyView is the session table shown from the menu.
type historyView struct {
	store     SessionStore
	contentID string
	title     string
	sessions  []storage.Session
	err       error
	table     table.Model
	width     int
	height    int
}

func newHistoryView(store SessionStore, width, height int) historyView {
	h := historyView{store: store, width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table with columns fitted to the width.
func (h *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(h.height-10, 3)), // Leave room for header, help, and margins
	)

	// Table styles
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

// load reads the sessions of one content.
func (h *historyView) load(contentID, title string) {
	h.contentID = contentID
	h.title = title
	h.err = nil
	h.sessions = nil

	if h.store != nil {
		h.sessions, h.err = h.store.TopSessions(contentID, maxSessions)
	}
	h.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (h *historyView) updateTableRows() {
	rows := make([]table.Row, len(h.sessions))
	for i, s := range h.sessions {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%.0f", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.Duration.Round(time.Second).String(),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	h.table.SetRows(rows)

	// Reset cursor to top
	h.table.GotoTop()
}

// resize refits the table to the terminal.
func (h *historyView) resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateTableRows()
}

// update passes scrolling keys to the table.
func (h historyView) update(msg tea.KeyMsg, keys KeyMap) (historyView, tea.Cmd) {
	if !key.Matches(msg, keys.Up, keys.Down) {
		return h, nil
	}
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// view renders the table or an empty message.
func (h historyView) view(theme Theme) string {
	var b strings.Builder

	b.WriteString(theme.MenuTitle.Render("HISTORY - " + h.title))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case h.err != nil:
		b.WriteString(theme.Error.Render("Cannot load history: " + h.err.Error()))
	case h.store == nil:
		b.WriteString(theme.MenuSubtitle.Render("History is not stored in this session."))
	case len(h.sessions) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No sessions recorded yet.\nEnd a session to record it!")))
	default:
		b.WriteString(tableStyle.Render(h.table.View()))
	}
	return b.String()
}
