// Package tui provides the Bubble Tea host for the frame engine.
// It maps keys to lifecycle actions, drives the engine from tea ticks,
// and renders the surface with the session's stats around it.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/become-pm/internal/engine"
)

// TickMsg is the refresh signal that fires the engine's pending frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after the
// refresh interval for the given rate.
func tickCmd(rate int) tea.Cmd {
	interval := engine.RefreshInterval(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
