package dropdown

import "github.com/ruminaider/dropdown/options"

type rowKind int

const (
	rowOption rowKind = iota
	rowHeader         // group label, not selectable
	rowEmpty          // "no options" placeholder
)

// row is one line of the open menu.
type row struct {
	kind    rowKind
	label   string
	option  options.Option
	grouped bool // option belongs to a group and is indented
}

// selectable reports whether the cursor may rest on r.
func (r row) selectable() bool {
	return r.kind == rowOption && !r.option.Disabled
}

// buildRows flattens a visible list into menu rows. An empty list becomes a
// single placeholder row carrying noOptions.
func buildRows(visible options.List, noOptions string) []row {
	var rows []row
	for _, it := range visible {
		switch v := it.(type) {
		case options.Option:
			rows = append(rows, row{kind: rowOption, label: v.Label, option: v})
		case options.Group:
			rows = append(rows, row{kind: rowHeader, label: v.Label})
			for _, o := range v.Options {
				rows = append(rows, row{kind: rowOption, label: o.Label, option: o, grouped: true})
			}
		}
	}
	if len(rows) == 0 {
		rows = append(rows, row{kind: rowEmpty, label: noOptions})
	}
	return rows
}

// menuWindow describes which rows are drawn given a scroll offset.
type menuWindow struct {
	start, end         int
	hasAbove, hasBelow bool
}

// window reserves lines for the scroll indicators so the menu never grows
// beyond height lines. Rows are counted after the ↑ hint, and ↓ shows
// whenever any row is left below the last one drawn.
func window(total, offset, height int) menuWindow {
	w := menuWindow{
		start:    offset,
		hasAbove: offset > 0,
	}
	visible := height
	if w.hasAbove {
		visible--
	}
	if offset+visible < total {
		w.hasBelow = true
		visible--
	}
	if visible < 1 {
		visible = 1
	}
	w.end = offset + visible
	if w.end > total {
		w.end = total
	}
	return w
}

// firstSelectable returns the index of the first selectable row, or -1.
func firstSelectable(rows []row) int {
	for i, r := range rows {
		if r.selectable() {
			return i
		}
	}
	return -1
}

// indexOfValue returns the row holding the selectable option value, or -1.
func indexOfValue(rows []row, value string) int {
	for i, r := range rows {
		if r.selectable() && r.option.Value == value {
			return i
		}
	}
	return -1
}

// nextSelectable walks from cursor in direction dir (+1 or -1), skipping
// headers and disabled options. The cursor stays put at either end.
func nextSelectable(rows []row, cursor, dir int) int {
	for next := cursor + dir; next >= 0 && next < len(rows); next += dir {
		if rows[next].selectable() {
			return next
		}
	}
	return cursor
}

// clampOffset adjusts offset so the cursor is inside the drawn window. The
// last page starts where the rows below fill the menu under a ↑ hint, so the
// menu keeps its full height at the bottom of the list.
func clampOffset(total, cursor, offset, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	lastPage := height - 1
	if lastPage < 1 {
		lastPage = 1
	}
	maxOffset := total - lastPage
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < 0 {
		return offset
	}
	if cursor < offset {
		offset = cursor
	}
	for offset < maxOffset && cursor >= window(total, offset, height).end {
		offset++
	}
	return offset
}
