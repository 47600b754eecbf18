package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/dropdown/dropdown"
	"github.com/ruminaider/dropdown/options"
	"github.com/ruminaider/dropdown/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fruitConfig(multiple bool) dropdown.Config {
	return dropdown.Config{
		Options: options.List{
			options.Option{Value: "a", Label: "Apple"},
			options.Option{Value: "b", Label: "Banana"},
			options.Group{Label: "Citrus", Options: []options.Option{
				{Value: "o", Label: "Orange"},
			}},
		},
		Multiple: multiple,
	}
}

// drive feeds msg to the host and then every message its command produces,
// the way the runtime would.
func drive(m HostModel, msg tea.Msg) HostModel {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		updated, cmd := m.Update(next)
		m = updated.(HostModel)
		queue = append(queue, run(cmd)...)
	}
	return m
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	case tea.QuitMsg:
		return nil
	}
	return []tea.Msg{msg}
}

func TestHost_SingleSelectionFlow(t *testing.T) {
	m := NewHostModel("Fruit", fruitConfig(false))
	m = drive(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Dropdown().IsOpen())

	m = drive(m, tea.KeyMsg{Type: tea.KeyDown})
	m = drive(m, tea.KeyMsg{Type: tea.KeyEnter})

	o, ok := m.Value().Option()
	require.True(t, ok)
	assert.Equal(t, "Banana", o.Label)
	assert.False(t, m.Dropdown().IsOpen())
}

func TestHost_MultiSelectionAccumulates(t *testing.T) {
	m := NewHostModel("Fruit", fruitConfig(true))
	m = drive(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, selection.KindMulti, m.Value().Kind())
	assert.Equal(t, []string{"a", "b"}, m.Value().Values())
	assert.True(t, m.Dropdown().IsOpen(), "multi mode stays open")
}

func TestHost_IgnoresChangesForOtherDropdowns(t *testing.T) {
	m := NewHostModel("Fruit", fruitConfig(false))
	m = drive(m, dropdown.ChangeMsg{ID: "other", Value: selection.Single(options.Option{Value: "x", Label: "X"})})
	assert.True(t, m.Value().IsNone())
}

func TestHost_ConfirmAndCancel(t *testing.T) {
	t.Run("ctrl+s confirms", func(t *testing.T) {
		m := NewHostModel("Fruit", fruitConfig(false))
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		m = updated.(HostModel)
		assert.True(t, m.Confirmed)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		m := NewHostModel("Fruit", fruitConfig(false))
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = updated.(HostModel)
		assert.True(t, m.Quitting)
		assert.False(t, m.Confirmed)
	})

	t.Run("q confirms only while closed", func(t *testing.T) {
		m := NewHostModel("Fruit", fruitConfig(false))
		m = drive(m, tea.KeyMsg{Type: tea.KeyEnter})
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = updated.(HostModel)
		assert.False(t, m.Confirmed)

		m = drive(m, tea.KeyMsg{Type: tea.KeyEsc})
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = updated.(HostModel)
		assert.True(t, m.Confirmed)
	})
}

func TestHost_MouseUsesScreenOrigin(t *testing.T) {
	m := NewHostModel("Fruit", fruitConfig(false))
	m = drive(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}
	m = drive(m, press(dropdownX+1, dropdownY))
	require.True(t, m.Dropdown().IsOpen())

	// Banana is the second menu row.
	m = drive(m, press(dropdownX+3, dropdownY+2))
	o, ok := m.Value().Option()
	require.True(t, ok)
	assert.Equal(t, "Banana", o.Label)

	m = drive(m, press(dropdownX+1, dropdownY))
	require.True(t, m.Dropdown().IsOpen())
	m = drive(m, press(70, 20))
	assert.False(t, m.Dropdown().IsOpen(), "click outside closes the menu")
}

func TestHost_View(t *testing.T) {
	m := NewHostModel("Fruit", fruitConfig(true))
	m = drive(m, tea.WindowSizeMsg{Width: 100, Height: 12})
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Fruit")
	assert.Contains(t, view, "Select...")
	assert.Contains(t, view, "0/3 selected · multiple")
	assert.Contains(t, view, "Ctrl+S")
}
