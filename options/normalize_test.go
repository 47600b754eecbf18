package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNormalize_PreservesStructure(t *testing.T) {
	l := fruitList()
	got := Normalize(l)
	assert.Equal(t, l, got)
	assert.Equal(t, Leaves(l), Leaves(got))
}

func TestNormalize_DeepCopy(t *testing.T) {
	l := fruitList()
	got := Normalize(l)

	g := got[1].(Group)
	g.Options[0].Label = "changed"

	assert.Equal(t, "Banana", l[1].(Group).Options[0].Label)
}

func TestNormalize_NilInputs(t *testing.T) {
	got := Normalize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	var nilOpt *Option
	got = Normalize(List{nil, nilOpt, &apple, Group{Label: "empty"}})
	require.Len(t, got, 2)
	assert.Equal(t, apple, got[0])
	g := got[1].(Group)
	assert.NotNil(t, g.Options)
	assert.Empty(t, g.Options)
}

func TestNormalizeRaw_DefaultsDisabled(t *testing.T) {
	raw := []RawItem{
		{Value: "a", Label: "Apple"},
		{Value: "b", Label: "Banana", Disabled: boolPtr(true)},
		{Value: "c", Label: "Cherry", Disabled: boolPtr(false)},
		{Label: "Citrus", Options: []RawItem{
			{Value: "o", Label: "Orange"},
			{Value: "l", Label: "Lemon", Disabled: boolPtr(true)},
		}},
	}
	got := NormalizeRaw(raw)

	require.Len(t, got, 4)
	assert.Equal(t, Option{Value: "a", Label: "Apple"}, got[0])
	assert.Equal(t, Option{Value: "b", Label: "Banana", Disabled: true}, got[1])
	assert.Equal(t, Option{Value: "c", Label: "Cherry"}, got[2])
	assert.Equal(t, Group{Label: "Citrus", Options: []Option{
		{Value: "o", Label: "Orange"},
		{Value: "l", Label: "Lemon", Disabled: true},
	}}, got[3])
}

func TestNormalizeRaw_GroupValueIgnoredAndNestedFlattened(t *testing.T) {
	raw := []RawItem{
		{Value: "ignored", Label: "Outer", Options: []RawItem{
			{Value: "x", Label: "X"},
			{Label: "Inner", Options: []RawItem{{Value: "y", Label: "Y"}}},
		}},
	}
	got := NormalizeRaw(raw)
	require.Len(t, got, 1)
	g := got[0].(Group)
	assert.Equal(t, "Outer", g.Label)
	assert.Equal(t, []Option{{Value: "x", Label: "X"}, {Value: "y", Label: "Y"}}, g.Options)
}

func TestRaw_RoundTrip(t *testing.T) {
	l := fruitList()
	assert.Equal(t, l, NormalizeRaw(Raw(l)))
}

func TestLeavesFindCount(t *testing.T) {
	l := fruitList()
	assert.Equal(t, []Option{apple, banana, cherry, orange}, Leaves(l))
	assert.Equal(t, 4, LeafCount(l))

	o, ok := Find(l, "c")
	assert.True(t, ok)
	assert.Equal(t, cherry, o)

	_, ok = Find(l, "nope")
	assert.False(t, ok)
}
