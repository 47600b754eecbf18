package dropdown

import "github.com/ruminaider/dropdown/selection"

// MenuState is the open/closed state of the menu.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// ChangeMsg is the only way the dropdown reports a new selection. The host
// stores Value and passes it back with SetValue.
type ChangeMsg struct {
	ID    string
	Value selection.Value
}

// MenuMsg is emitted whenever the menu opens or closes.
type MenuMsg struct {
	ID   string
	Open bool
}

// outsideClickMsg is produced by the click-outside listener.
type outsideClickMsg struct{ id string }
