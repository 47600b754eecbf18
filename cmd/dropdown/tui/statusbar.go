package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/dropdown/selection"
)

// StatusBar renders the bottom row with the selection count and keyboard
// shortcuts.
type StatusBar struct {
	selected int
	total    int
	mode     selection.Mode
	bindings []key.Binding
	width    int
}

// NewStatusBar creates a status bar listing bindings on the right.
func NewStatusBar(bindings []key.Binding) StatusBar {
	return StatusBar{bindings: bindings}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the selection count.
func (s *StatusBar) Update(v selection.Value, mode selection.Mode, total int) {
	s.selected = v.Len()
	s.total = total
	s.mode = mode
}

// View renders the status bar.
func (s StatusBar) View() string {
	leftPart := fmt.Sprintf("%d/%d selected · %s", s.selected, s.total, s.mode)

	availableWidth := s.width - 2 // StatusBarStyle padding
	leftWidth := ansi.StringWidth(leftPart)

	// Shortcuts that do not fit are dropped from the end.
	shortcuts := []string{
		StatusBarKeyStyle.Render("Ctrl+S") + ": done",
		StatusBarKeyStyle.Render("Ctrl+C") + ": cancel",
	}
	for _, b := range s.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		shortcuts = append(shortcuts, StatusBarKeyStyle.Render(h.Key)+": "+h.Desc)
	}
	var rightPart string
	for _, sc := range shortcuts {
		next := sc
		if rightPart != "" {
			next = rightPart + " · " + sc
		}
		if s.width > 0 && leftWidth+1+ansi.StringWidth(next) > availableWidth {
			break
		}
		rightPart = next
	}

	gap := availableWidth - leftWidth - ansi.StringWidth(rightPart)
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart
	return StatusBarStyle.Width(s.width).Render(content)
}
