package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ruminaider/dropdown/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFilter_Query(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runFilter(&buf, config.Sample(false, true, true), "an", nil))

	out := buf.String()
	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "Banana")
	assert.Contains(t, out, "Orange")
	assert.Contains(t, out, "Citrus")
	assert.NotContains(t, out, "Apple")
	assert.NotContains(t, out, "Berries", "groups without matches are dropped")
}

func TestRunFilter_DisabledState(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runFilter(&buf, config.Sample(false, false, false), "yuzu", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "disabled")
}

func TestRunFilter_SelectedValues(t *testing.T) {
	t.Run("multiple mode hides selected", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runFilter(&buf, config.Sample(true, false, false), "", []string{"apple", "banana"}))
		out := buf.String()
		assert.NotContains(t, out, "Apple")
		assert.NotContains(t, out, "Banana")
		assert.Contains(t, out, "Strawberry")
	})

	t.Run("single mode marks selected", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runFilter(&buf, config.Sample(false, false, false), "", []string{"apple"}))
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "Apple") {
				assert.Contains(t, line, "selected")
			}
		}
	})
}

func TestRunFilter_NoOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runFilter(&buf, config.Sample(false, true, false), "zzz", nil))
	assert.Equal(t, "No options found\n", buf.String())

	buf.Reset()
	def := config.Sample(false, true, false)
	def.NoOptionsMessage = "Nothing here"
	require.NoError(t, runFilter(&buf, def, "zzz", nil))
	assert.Equal(t, "Nothing here\n", buf.String())
}
