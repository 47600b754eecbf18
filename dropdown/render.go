package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/dropdown/options"
	"github.com/ruminaider/dropdown/selection"
)

const (
	iconClear        = "✕"
	iconChevronDown  = "▾"
	iconChevronUp    = "▴"
	iconSearch       = "⌕ "
	iconGroupIndent  = "  "
	iconCursor       = "› "
	iconNoCursor     = "  "
	scrollHintAbove  = "  ↑ more"
	scrollHintBelow  = "  ↓ more"
	headerDecoration = "──"
)

type hotKind int

const (
	hotChipRemove hotKind = iota
	hotClear
)

// hotspot is a clickable span of the control row, in cells from its left
// edge.
type hotspot struct {
	x0, x1 int
	kind   hotKind
	option options.Option
}

func (h hotspot) contains(x int) bool {
	return x >= h.x0 && x < h.x1
}

// controlLine is the rendered control row with its clickable spans.
type controlLine struct {
	text  string
	spots []hotspot
}

// RenderChip returns a styled chip for o. The ✕ is omitted when removable is
// false.
func RenderChip(o options.Option, removable bool) string {
	if !removable {
		return ChipStyle.Render("[" + o.Label + "]")
	}
	return ChipStyle.Render("["+o.Label+" ") + ChipRemoveStyle.Render(iconClear) + ChipStyle.Render("]")
}

// RenderHeader returns a styled group header line.
func RenderHeader(label string) string {
	return HeaderStyle.Render(headerDecoration + " " + label + " " + headerDecoration)
}

// RenderOption returns a styled option row. Disabled options are rendered
// struck through and never carry the cursor.
func RenderOption(o options.Option, grouped, isCursor, isSelected bool) string {
	indent := ""
	if grouped {
		indent = iconGroupIndent
	}
	cursor := iconNoCursor
	if isCursor && !o.Disabled {
		cursor = iconCursor
	}

	var label string
	switch {
	case o.Disabled:
		label = DisabledOptionStyle.Render(o.Label)
	case isSelected:
		label = SelectedOptionStyle.Render(o.Label)
	case isCursor:
		label = CursorOptionStyle.Render(o.Label)
	default:
		label = OptionStyle.Render(o.Label)
	}
	return indent + cursor + label
}

// RenderNoOptions returns the placeholder row shown for an empty menu.
func RenderNoOptions(message string) string {
	return iconNoCursor + NoOptionsStyle.Render(message)
}

// renderControl lays out the control row: value or placeholder on the left,
// spinner, clear icon and chevron on the right, padded to width.
func (m Model) renderControl(h selection.Handle) controlLine {
	var spots []hotspot
	editable := !m.cfg.Disabled
	value := h.Value()

	var left string
	switch {
	case value.IsNone():
		left = PlaceholderStyle.Render(m.cfg.Placeholder)
	case m.mode == selection.ModeMultiple:
		var parts []string
		x := 1 // leading space
		for _, o := range value.List() {
			chip := RenderChip(o, editable)
			if editable {
				// "[" + label + " " precedes the ✕.
				pos := x + ansi.StringWidth("["+o.Label+" ")
				spots = append(spots, hotspot{x0: pos, x1: pos + ansi.StringWidth(iconClear), kind: hotChipRemove, option: o})
			}
			x += lipgloss.Width(chip) + 1
			parts = append(parts, chip)
		}
		left = strings.Join(parts, " ")
	default:
		left = value.String()
	}
	left = " " + left

	var right []string
	spinnerWidth := 0
	if m.cfg.Loading {
		sp := m.spinner.View()
		spinnerWidth = lipgloss.Width(sp)
		right = append(right, sp)
	}
	showClear := m.cfg.Clearable && editable && !value.IsNone()
	if showClear {
		right = append(right, IconStyle.Render(iconClear))
	}
	chevron := iconChevronDown
	if m.open() {
		chevron = iconChevronUp
	}
	right = append(right, IconStyle.Render(chevron))
	rightText := strings.Join(right, " ") + " "
	rightWidth := lipgloss.Width(rightText)

	leftRoom := m.width - rightWidth - 1
	if leftRoom < 1 {
		leftRoom = 1
	}
	if lipgloss.Width(left) > leftRoom {
		left = ansi.Truncate(left, leftRoom, "…")
		// Spots cut off by truncation are not clickable.
		kept := spots[:0]
		for _, s := range spots {
			if s.x1 <= leftRoom-1 {
				kept = append(kept, s)
			}
		}
		spots = kept
	}

	gap := m.width - lipgloss.Width(left) - rightWidth
	if gap < 1 {
		gap = 1
	}
	if showClear {
		x := lipgloss.Width(left) + gap
		if m.cfg.Loading {
			x += spinnerWidth + 1
		}
		spots = append(spots, hotspot{x0: x, x1: x + ansi.StringWidth(iconClear), kind: hotClear})
	}

	style := ControlStyle
	switch {
	case m.cfg.Disabled:
		style = ControlDisabledStyle
	case m.focused:
		style = ControlFocusedStyle
	}
	return controlLine{
		text:  style.Render(left + strings.Repeat(" ", gap) + rightText),
		spots: spots,
	}
}

// menuLine is one rendered line of the open menu. rowIndex is -1 for lines
// that are not rows (search box, scroll hints).
type menuLine struct {
	text     string
	rowIndex int
}

// renderMenu lays out the open menu below the control row.
func (m Model) renderMenu(h selection.Handle) []menuLine {
	var lines []menuLine
	if m.cfg.Searchable {
		lines = append(lines, menuLine{text: m.search.View(), rowIndex: -1})
	}

	w := window(len(m.rows), m.offset, m.cfg.MaxHeight)
	if w.hasAbove {
		lines = append(lines, menuLine{text: ScrollHintStyle.Render(scrollHintAbove), rowIndex: -1})
	}

	current, single := h.Value().Option()
	for i := w.start; i < w.end; i++ {
		r := m.rows[i]
		var text string
		switch r.kind {
		case rowHeader:
			text = RenderHeader(r.label)
		case rowEmpty:
			text = RenderNoOptions(r.label)
		default:
			isSelected := single && current.Value == r.option.Value
			text = RenderOption(r.option, r.grouped, i == m.cursor, isSelected)
		}
		lines = append(lines, menuLine{text: ansi.Truncate(text, m.width, "…"), rowIndex: i})
	}

	if w.hasBelow {
		lines = append(lines, menuLine{text: ScrollHintStyle.Render(scrollHintBelow), rowIndex: -1})
	}
	return lines
}
