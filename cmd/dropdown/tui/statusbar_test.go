package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/dropdown/dropdown"
	"github.com/ruminaider/dropdown/options"
	"github.com/ruminaider/dropdown/selection"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_Counts(t *testing.T) {
	s := NewStatusBar(nil)
	s.SetWidth(80)
	s.Update(selection.Multi(options.Option{Value: "a", Label: "A"}), selection.ModeMultiple, 4)
	view := ansi.Strip(s.View())
	assert.Contains(t, view, "1/4 selected · multiple")
	assert.Contains(t, view, "Ctrl+S: done")
}

func TestStatusBar_DropsShortcutsThatDoNotFit(t *testing.T) {
	s := NewStatusBar(dropdown.DefaultKeyMap().ShortHelp())
	s.SetWidth(50)
	s.Update(selection.None(), selection.ModeSingle, 3)
	view := ansi.Strip(s.View())
	assert.NotContains(t, view, "\n")
	assert.Equal(t, 50, ansi.StringWidth(view))
	assert.True(t, strings.Contains(view, "Ctrl+S: done"))
	assert.NotContains(t, view, "clear")
}
