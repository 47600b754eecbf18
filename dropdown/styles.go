package dropdown

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Control styles.
var (
	// ControlStyle is the closed control row.
	ControlStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0)

	// ControlFocusedStyle is the control row while it has keyboard focus.
	ControlFocusedStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface1)

	// ControlDisabledStyle is the control row of a disabled dropdown.
	ControlDisabledStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Background(colorBase)

	// PlaceholderStyle renders the placeholder when nothing is selected.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)

	// ChipStyle renders one selected option in multi-select mode.
	ChipStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue)

	// ChipRemoveStyle renders the ✕ inside a chip.
	ChipRemoveStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorBlue).
			Bold(true)

	// IconStyle renders the clear icon and the chevron.
	IconStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// SpinnerStyle renders the loading indicator.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorMauve)
)

// Menu styles.
var (
	// HeaderStyle is used for group headers.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// OptionStyle is an ordinary option row.
	OptionStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// CursorOptionStyle is the highlighted option row.
	CursorOptionStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// SelectedOptionStyle marks the current value in single-select mode.
	SelectedOptionStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorBlue)

	// DisabledOptionStyle renders options that cannot be picked.
	DisabledOptionStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Strikethrough(true)

	// NoOptionsStyle renders the placeholder row of an empty menu.
	NoOptionsStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)

	// ScrollHintStyle is used for the "more" indicators.
	ScrollHintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// SearchPromptStyle colours the search icon.
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(colorBlue)
)
