package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the host chrome.
type Theme struct {
	// Menu styles
	MenuTitle      lipgloss.Style
	MenuSubtitle   lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style

	// Stat panel styles
	StatLabel     lipgloss.Style
	StatValue     lipgloss.Style
	StatSeparator lipgloss.Style

	// Surface frame
	Frame lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style
	Record        lipgloss.Style

	// Misc
	Error lipgloss.Style
	Flash lipgloss.Style
	Help  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	indigo := lipgloss.Color("#667eea")

	return Theme{
		MenuTitle:      lipgloss.NewStyle().Foreground(indigo).Bold(true),
		MenuSubtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		StatLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		StatSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(indigo),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(0, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Record:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),

		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Flash: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Italic(true),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Bold(true).Underline(true)
	theme.Frame = theme.Frame.BorderForeground(lipgloss.Color("250"))
	theme.OverlayTitle = lipgloss.NewStyle().Bold(true)
	theme.Record = lipgloss.NewStyle().Bold(true)
	return theme
}
