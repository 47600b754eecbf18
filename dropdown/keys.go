package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the dropdown.
type KeyMap struct {
	Toggle     key.Binding // open a closed menu
	Close      key.Binding
	Up         key.Binding
	Down       key.Binding
	Choose     key.Binding
	RemoveLast key.Binding // multi mode, empty search only
	Clear      key.Binding
}

// DefaultKeyMap returns the bindings used when Config.KeyMap is unset.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		RemoveLast: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "remove last"),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "clear"),
		),
	}
}

// ShortHelp lists the bindings shown in a one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Choose, k.Close, k.Clear}
}
