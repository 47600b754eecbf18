package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	// TitleStyle renders the header line above the dropdown.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// HintStyle renders secondary text under the title.
	HintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// StatusBarStyle is the bottom row.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 1)

	// StatusBarKeyStyle highlights key names in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Background(colorMantle).
				Bold(true)
)
