// Package dropdown is a Bubble Tea select component with single and multiple
// selection, search filtering, option groups, and clearable, disabled and
// loading states.
//
// The component is controlled: it never changes its own value. Picking,
// removing or clearing options emits a ChangeMsg and the host passes the new
// value back with SetValue.
package dropdown

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/dropdown/options"
	"github.com/ruminaider/dropdown/selection"
)

// Defaults applied by New to empty Config fields.
const (
	DefaultPlaceholder       = "Select..."
	DefaultSearchPlaceholder = "Search..."
	DefaultNoOptionsMessage  = "No options found"
	DefaultWidth             = 40
	DefaultMaxHeight         = 8
)

// Config configures a dropdown. Multiple cannot change after New.
type Config struct {
	ID      string // echoed in messages; generated when empty
	Options options.List
	Value   selection.Value

	Placeholder       string
	SearchPlaceholder string
	NoOptionsMessage  string

	Multiple   bool
	Clearable  bool
	Searchable bool
	Disabled   bool
	Loading    bool
	MenuOpen   bool // initial state only

	Matcher   options.Matcher
	Width     int
	MaxHeight int // menu rows drawn before scrolling
	KeyMap    *KeyMap
	Logger    *slog.Logger
}

var lastID atomic.Int64

func nextID() string {
	return fmt.Sprintf("dropdown-%d", lastID.Add(1))
}

// Model is the dropdown component.
type Model struct {
	cfg  Config
	id   string
	mode selection.Mode
	keys KeyMap
	log  *slog.Logger

	list    options.List // normalized caller options
	value   selection.Value
	visible options.List
	rows    []row

	state   MenuState
	cursor  int // row index, -1 when nothing is selectable
	offset  int
	focused bool

	width            int
	originX, originY int

	search  textinput.Model
	spinner spinner.Model
	outside OutsideClick
}

// New creates a dropdown from cfg and mounts its click-outside listener.
func New(cfg Config) Model {
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}
	if cfg.SearchPlaceholder == "" {
		cfg.SearchPlaceholder = DefaultSearchPlaceholder
	}
	if cfg.NoOptionsMessage == "" {
		cfg.NoOptionsMessage = DefaultNoOptionsMessage
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.MaxHeight <= 0 {
		cfg.MaxHeight = DefaultMaxHeight
	}
	if cfg.Matcher == nil {
		cfg.Matcher = options.ContainsFold
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}

	m := Model{
		cfg:   cfg,
		id:    cfg.ID,
		keys:  keys,
		log:   cfg.Logger,
		list:  options.Normalize(cfg.Options),
		value: cfg.Value,
		width: cfg.Width,
	}
	if m.id == "" {
		m.id = nextID()
	}
	if cfg.Multiple {
		m.mode = selection.ModeMultiple
	}
	if cfg.MenuOpen {
		m.state = MenuOpen
	}

	ti := textinput.New()
	ti.Prompt = iconSearch
	ti.PromptStyle = SearchPromptStyle
	ti.Placeholder = cfg.SearchPlaceholder
	ti.Width = cfg.Width - 4
	if m.state == MenuOpen && cfg.Searchable {
		ti.Focus()
	}
	m.search = ti

	m.spinner = spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(SpinnerStyle),
	)

	m.Mount()
	m.refresh()
	return m
}

// Init starts the spinner when loading.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.cfg.Loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	if m.open() && m.cfg.Searchable {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// --- Host-facing accessors ---

// ID returns the identifier echoed in ChangeMsg and MenuMsg.
func (m Model) ID() string { return m.id }

// Mode returns the selection mode fixed at construction.
func (m Model) Mode() selection.Mode { return m.mode }

// Value returns the value last passed in by the host.
func (m Model) Value() selection.Value { return m.value }

// MenuState returns the open/closed state.
func (m Model) MenuState() MenuState { return m.state }

// IsOpen reports whether the menu is shown. A disabled dropdown never shows
// its menu.
func (m Model) IsOpen() bool { return m.open() }

// SearchText returns the current search query.
func (m Model) SearchText() string { return m.search.Value() }

// Options returns the normalized option list the dropdown was given.
func (m Model) Options() options.List { return m.list }

// Visible returns the option list currently offered to the user.
func (m Model) Visible() options.List { return m.visible }

// Focused reports whether the dropdown receives key messages.
func (m Model) Focused() bool { return m.focused }

// Handle returns the selection capability bound to the current value. The
// dropdown renders and dispatches through it; a host can use it to preview
// what a pick would do.
func (m Model) Handle() selection.Handle {
	return selection.Bound{Mode: m.mode, Current: m.value}
}

// Bounds returns the screen rectangle of the rendered dropdown.
func (m Model) Bounds() Bounds {
	return Bounds{
		X:      m.originX,
		Y:      m.originY,
		Width:  m.width,
		Height: lipgloss.Height(m.View()),
	}
}

// --- Host-facing setters ---

// SetValue stores the value the host owns. Call it after handling ChangeMsg.
func (m *Model) SetValue(v selection.Value) {
	m.value = v
	m.refresh()
}

// SetOptions replaces the option list.
func (m *Model) SetOptions(l options.List) {
	m.list = options.Normalize(l)
	m.refresh()
}

// SetLoading toggles the loading indicator and returns the command that
// starts the spinner.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	started := loading && !m.cfg.Loading
	m.cfg.Loading = loading
	if started {
		return m.spinner.Tick
	}
	return nil
}

// SetDisabled toggles the disabled configuration.
func (m *Model) SetDisabled(disabled bool) {
	m.cfg.Disabled = disabled
	if disabled {
		m.search.Blur()
	}
}

// SetWidth sets the rendered width in cells.
func (m *Model) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	m.width = w
	m.search.Width = w - 4
}

// SetOrigin tells the dropdown where its top-left cell is on screen, for
// mouse hit testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Focus gives the dropdown keyboard focus.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
}

// Mount registers the click-outside listener. New calls it.
func (m *Model) Mount() {
	id := m.id
	m.outside.Mount(func() tea.Msg {
		return outsideClickMsg{id: id}
	})
}

// Unmount releases the click-outside listener. Call it when the host stops
// rendering the dropdown.
func (m *Model) Unmount() {
	m.outside.Unmount()
}

// --- Update ---

// Update handles keys, mouse presses, spinner ticks and click-outside
// notifications.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.cfg.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case outsideClickMsg:
		if msg.id != m.id {
			return m, nil
		}
		cmd := m.closeMenu()
		return m, cmd

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if !m.focused || m.cfg.Disabled {
			return m, nil
		}
		return m.updateKey(msg)
	}

	if m.open() && m.cfg.Searchable {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	h := m.Handle()
	if !m.open() {
		switch {
		case key.Matches(msg, m.keys.Toggle):
			cmd = m.toggle()
		case key.Matches(msg, m.keys.RemoveLast):
			cmd = m.removeLast(h)
		case key.Matches(msg, m.keys.Clear):
			cmd = m.clear(h)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		cmd = m.toggle()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(+1)
	case key.Matches(msg, m.keys.Choose):
		cmd = m.chooseCursor(h)
	case m.cfg.Clearable && key.Matches(msg, m.keys.Clear):
		cmd = m.clear(h)
	case key.Matches(msg, m.keys.RemoveLast) && m.search.Value() == "":
		cmd = m.removeLast(h)
	case !m.cfg.Searchable && key.Matches(msg, m.keys.Toggle):
		cmd = m.toggle()
	case m.cfg.Searchable:
		return m.updateSearch(msg)
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.Msg) (Model, tea.Cmd) {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refresh()
		m.cursor = firstSelectable(m.rows)
		m.offset = clampOffset(len(m.rows), m.cursor, 0, m.cfg.MaxHeight)
		m.log.Debug("dropdown search changed", "id", m.id, "query", m.search.Value(), "visible", options.LeafCount(m.visible))
	}
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}
	b := m.Bounds()
	if cmd := m.outside.Handle(msg, b); cmd != nil {
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || !b.Contains(msg.X, msg.Y) {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(+1)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	var cmd tea.Cmd
	h := m.Handle()
	x, y := msg.X-m.originX, msg.Y-m.originY
	if y == 0 {
		cmd = m.pressControl(h, x)
		return m, cmd
	}

	if !m.open() {
		return m, nil
	}
	lines := m.renderMenu(h)
	idx := y - 1
	if idx < 0 || idx >= len(lines) || lines[idx].rowIndex < 0 {
		return m, nil
	}
	ri := lines[idx].rowIndex
	if !m.rows[ri].selectable() {
		return m, nil
	}
	m.cursor = ri
	cmd = m.apply(h, m.rows[ri].option)
	return m, cmd
}

// pressControl handles a press on the control row at column x. Icon clicks
// do not toggle the menu.
func (m *Model) pressControl(h selection.Handle, x int) tea.Cmd {
	for _, s := range m.renderControl(h).spots {
		if !s.contains(x) {
			continue
		}
		switch s.kind {
		case hotChipRemove:
			return m.remove(h, s.option)
		case hotClear:
			return m.clear(h)
		}
	}
	return m.toggle()
}

// --- Interaction controller ---

func (m Model) open() bool {
	return m.state == MenuOpen && !m.cfg.Disabled
}

func (m Model) menuMsg(open bool) tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return MenuMsg{ID: id, Open: open}
	}
}

func (m Model) changeMsg(v selection.Value) tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return ChangeMsg{ID: id, Value: v}
	}
}

// toggle flips the menu between open and closed. Disabled dropdowns ignore
// it.
func (m *Model) toggle() tea.Cmd {
	if m.cfg.Disabled {
		return nil
	}
	if m.state == MenuOpen {
		return m.closeMenu()
	}
	return m.openMenu()
}

func (m *Model) openMenu() tea.Cmd {
	m.state = MenuOpen
	m.refresh()
	if cur, ok := m.Handle().Value().Option(); ok {
		if i := indexOfValue(m.rows, cur.Value); i >= 0 {
			m.cursor = i
			m.offset = clampOffset(len(m.rows), m.cursor, m.offset, m.cfg.MaxHeight)
		}
	}
	m.log.Debug("dropdown menu opened", "id", m.id)

	cmds := []tea.Cmd{m.menuMsg(true)}
	if m.cfg.Searchable {
		cmds = append(cmds, m.search.Focus())
	}
	return tea.Batch(cmds...)
}

func (m *Model) closeMenu() tea.Cmd {
	if m.state != MenuOpen {
		return nil
	}
	m.state = MenuClosed
	m.search.Blur()
	m.log.Debug("dropdown menu closed", "id", m.id)
	return m.menuMsg(false)
}

// commit turns a selection transition into commands. The value itself is
// left alone; the host owns it. An unchanged transition may still close the
// menu.
func (m *Model) commit(op string, tr selection.Transition) tea.Cmd {
	if !tr.Changed {
		if tr.Close {
			return m.closeMenu()
		}
		return nil
	}
	m.log.Debug("dropdown selection changed", "id", m.id, "op", op, "value", tr.Next.String())
	cmds := []tea.Cmd{m.changeMsg(tr.Next)}
	if tr.Close {
		cmds = append(cmds, m.closeMenu())
	}
	return tea.Batch(cmds...)
}

// apply selects o through h. Disabled options are never applied.
func (m *Model) apply(h selection.Handle, o options.Option) tea.Cmd {
	if m.cfg.Disabled || o.Disabled {
		return nil
	}
	return m.commit("apply", h.Apply(o))
}

func (m *Model) remove(h selection.Handle, o options.Option) tea.Cmd {
	if m.cfg.Disabled {
		return nil
	}
	return m.commit("remove", h.Remove(o))
}

func (m *Model) removeLast(h selection.Handle) tea.Cmd {
	v := h.Value()
	if m.mode != selection.ModeMultiple || v.Kind() != selection.KindMulti {
		return nil
	}
	list := v.List()
	return m.remove(h, list[len(list)-1])
}

func (m *Model) clear(h selection.Handle) tea.Cmd {
	if !m.cfg.Clearable || m.cfg.Disabled {
		return nil
	}
	return m.commit("clear", h.Clear())
}

func (m *Model) chooseCursor(h selection.Handle) tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.rows) || !m.rows[m.cursor].selectable() {
		return nil
	}
	return m.apply(h, m.rows[m.cursor].option)
}

func (m *Model) moveCursor(dir int) {
	if m.cursor < 0 {
		return
	}
	m.cursor = nextSelectable(m.rows, m.cursor, dir)
	m.offset = clampOffset(len(m.rows), m.cursor, m.offset, m.cfg.MaxHeight)
}

// refresh re-derives the visible list and rows from the current inputs and
// keeps the cursor on the same option when it is still offered.
func (m *Model) refresh() {
	var keep string
	if m.cursor >= 0 && m.cursor < len(m.rows) && m.rows[m.cursor].selectable() {
		keep = m.rows[m.cursor].option.Value
	}

	m.visible = options.Project(m.list, options.Query{
		Text:    m.search.Value(),
		Exclude: selection.Exclusions(m.mode, m.value),
		Matcher: m.cfg.Matcher,
	})
	m.rows = buildRows(m.visible, m.cfg.NoOptionsMessage)

	m.cursor = -1
	if keep != "" {
		m.cursor = indexOfValue(m.rows, keep)
	}
	if m.cursor < 0 {
		m.cursor = firstSelectable(m.rows)
	}
	m.offset = clampOffset(len(m.rows), m.cursor, m.offset, m.cfg.MaxHeight)
}

// --- View ---

// View renders the control row and, when open, the menu below it.
func (m Model) View() string {
	h := m.Handle()
	ctl := m.renderControl(h)
	if !m.open() {
		return ctl.text
	}
	lines := []string{ctl.text}
	for _, l := range m.renderMenu(h) {
		lines = append(lines, l.text)
	}
	return strings.Join(lines, "\n")
}
