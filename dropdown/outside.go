package dropdown

import tea "github.com/charmbracelet/bubbletea"

// Bounds is the screen rectangle a component occupies, in terminal cells.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// OutsideClick watches mouse presses and reports the ones landing outside a
// component. It only reports while mounted; Unmount releases it and is safe
// to call any number of times.
type OutsideClick struct {
	mounted   bool
	onOutside func() tea.Msg
}

// Mount registers the callback run for every outside press.
func (o *OutsideClick) Mount(onOutside func() tea.Msg) {
	o.onOutside = onOutside
	o.mounted = onOutside != nil
}

// Unmount releases the listener.
func (o *OutsideClick) Unmount() {
	o.mounted = false
	o.onOutside = nil
}

// Mounted reports whether the listener is active.
func (o OutsideClick) Mounted() bool {
	return o.mounted
}

// Handle returns a command running the callback when msg is a press outside
// b, and nil otherwise. Wheel events and releases are not presses.
func (o OutsideClick) Handle(msg tea.MouseMsg, b Bounds) tea.Cmd {
	if !o.mounted || msg.Action != tea.MouseActionPress || isWheel(msg.Button) {
		return nil
	}
	if b.Contains(msg.X, msg.Y) {
		return nil
	}
	return o.onOutside
}

func isWheel(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}
