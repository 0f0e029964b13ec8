package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/become-pm/internal/core"
)

// KeyMap defines the host key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Start   key.Binding
	Pause   key.Binding
	End     key.Binding
	Restart key.Binding
	Reset   key.Binding
	Back    key.Binding
	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause/resume"),
		),
		End: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear saved data"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		History: key.NewBinding(
			key.WithKeys("tab", "h"),
			key.WithHelp("tab", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.End, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Start, k.History},
		{k.Pause, k.End, k.Restart, k.Back},
		{k.Reset, k.Help, k.Quit},
	}
}

// Action translates a key message to a host action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.End):
		return core.ActionEnd
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
