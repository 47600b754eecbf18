package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/dropdown/dropdown"
	"github.com/ruminaider/dropdown/options"
	"github.com/ruminaider/dropdown/selection"
)

// Screen position of the dropdown: title, hint and a blank line sit above
// it, and it is indented by two cells.
const (
	dropdownX = 2
	dropdownY = 3

	maxDropdownWidth = 60
)

// HostModel is the full-screen program hosting one dropdown. It owns the
// selection and feeds every change back into the widget.
type HostModel struct {
	Title string

	dd     dropdown.Model
	status StatusBar
	width  int
	height int

	Confirmed bool
	Quitting  bool
}

// NewHostModel creates a host for a dropdown built from cfg.
func NewHostModel(title string, cfg dropdown.Config) HostModel {
	dd := dropdown.New(cfg)
	dd.Focus()
	dd.SetOrigin(dropdownX, dropdownY)

	keys := dropdown.DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}
	m := HostModel{
		Title:  title,
		dd:     dd,
		status: NewStatusBar(keys.ShortHelp()),
	}
	m.refreshStatus()
	return m
}

func (m HostModel) Init() tea.Cmd {
	return m.dd.Init()
}

// Value returns the selection the user ended with.
func (m HostModel) Value() selection.Value { return m.dd.Value() }

// Mode returns the dropdown's selection mode.
func (m HostModel) Mode() selection.Mode { return m.dd.Mode() }

// Dropdown returns the hosted widget.
func (m HostModel) Dropdown() dropdown.Model { return m.dd }

func (m *HostModel) refreshStatus() {
	m.status.Update(m.dd.Value(), m.dd.Mode(), options.LeafCount(m.dd.Options()))
}

func (m HostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 2*dropdownX
		if w > maxDropdownWidth {
			w = maxDropdownWidth
		}
		m.dd.SetWidth(w)
		m.status.SetWidth(msg.Width)
		return m, nil

	case dropdown.ChangeMsg:
		if msg.ID == m.dd.ID() {
			m.dd.SetValue(msg.Value)
			m.refreshStatus()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.Quitting = true
			m.dd.Unmount()
			return m, tea.Quit
		case "ctrl+s":
			m.Confirmed = true
			m.dd.Unmount()
			return m, tea.Quit
		case "q":
			if !m.dd.IsOpen() {
				m.Confirmed = true
				m.dd.Unmount()
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.dd, cmd = m.dd.Update(msg)
	m.refreshStatus()
	return m, cmd
}

func (m HostModel) View() string {
	if m.Quitting || m.Confirmed {
		return ""
	}

	indent := strings.Repeat(" ", dropdownX)
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(HintStyle.Render("Pick with the keyboard or mouse. Ctrl+S or q when closed confirms."))
	b.WriteString("\n\n")
	for i, line := range strings.Split(m.dd.View(), "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent + line)
	}

	body := b.String()
	if m.width == 0 {
		return body
	}
	status := m.status.View()
	pad := m.height - lipgloss.Height(body) - lipgloss.Height(status)
	if pad < 1 {
		pad = 1
	}
	return body + strings.Repeat("\n", pad) + status
}
