package dropdown

import (
	"testing"

	"github.com/ruminaider/dropdown/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRows(t *testing.T) {
	rows := buildRows(fruits(), "none")
	require.Len(t, rows, 5)
	assert.Equal(t, rowOption, rows[0].kind)
	assert.False(t, rows[0].grouped)
	assert.Equal(t, rowHeader, rows[2].kind)
	assert.Equal(t, "More", rows[2].label)
	assert.True(t, rows[3].grouped)
	assert.False(t, rows[3].selectable())
	assert.True(t, rows[4].selectable())
}

func TestBuildRows_Empty(t *testing.T) {
	rows := buildRows(options.List{}, "none")
	require.Len(t, rows, 1)
	assert.Equal(t, rowEmpty, rows[0].kind)
	assert.Equal(t, "none", rows[0].label)
	assert.Equal(t, -1, firstSelectable(rows))
}

func TestNextSelectable(t *testing.T) {
	rows := buildRows(fruits(), "none")
	assert.Equal(t, 1, nextSelectable(rows, 0, +1))
	assert.Equal(t, 4, nextSelectable(rows, 1, +1))
	assert.Equal(t, 4, nextSelectable(rows, 4, +1))
	assert.Equal(t, 1, nextSelectable(rows, 4, -1))
	assert.Equal(t, 0, nextSelectable(rows, 0, -1))
}

func TestIndexOfValue(t *testing.T) {
	rows := buildRows(fruits(), "none")
	assert.Equal(t, 4, indexOfValue(rows, "c"))
	assert.Equal(t, -1, indexOfValue(rows, "o"), "disabled rows are not targets")
	assert.Equal(t, -1, indexOfValue(rows, "zz"))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                  string
		total, offset, height int
		want                  menuWindow
	}{
		{"fits", 3, 0, 8, menuWindow{start: 0, end: 3}},
		{"top", 10, 0, 4, menuWindow{start: 0, end: 3, hasBelow: true}},
		{"middle", 10, 3, 4, menuWindow{start: 3, end: 5, hasAbove: true, hasBelow: true}},
		{"one row hidden below", 8, 4, 4, menuWindow{start: 4, end: 6, hasAbove: true, hasBelow: true}},
		{"last page", 8, 5, 4, menuWindow{start: 5, end: 8, hasAbove: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window(tt.total, tt.offset, tt.height))
		})
	}
}

func TestWindow_NeverHidesRowsWithoutHint(t *testing.T) {
	for offset := 0; offset < 8; offset++ {
		w := window(8, offset, 4)
		lines := w.end - w.start
		if w.hasAbove {
			lines++
		}
		if w.hasBelow {
			lines++
		}
		assert.LessOrEqual(t, lines, 4, "offset %d", offset)
		assert.Equal(t, w.end < 8, w.hasBelow, "offset %d", offset)
	}
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, 0, clampOffset(3, 2, 0, 8))
	assert.Equal(t, 0, clampOffset(10, 2, 0, 4))
	assert.Equal(t, 2, clampOffset(10, 2, 5, 4))
	assert.Equal(t, 7, clampOffset(10, 9, 0, 4))
	assert.Equal(t, 0, clampOffset(10, 0, 0, 0))
}

func TestClampOffset_KeepsCursorDrawn(t *testing.T) {
	offset := 0
	for cursor := 0; cursor < 8; cursor++ {
		offset = clampOffset(8, cursor, offset, 4)
		w := window(8, offset, 4)
		assert.True(t, cursor >= w.start && cursor < w.end, "cursor %d offset %d", cursor, offset)
	}
	assert.Equal(t, 5, offset, "the last page fills the menu")
}
