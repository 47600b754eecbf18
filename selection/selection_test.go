package selection

import (
	"testing"

	"github.com/ruminaider/dropdown/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	apple  = options.Option{Value: "a", Label: "Apple"}
	banana = options.Option{Value: "b", Label: "Banana"}
	cherry = options.Option{Value: "c", Label: "Cherry"}
)

func TestZeroValueIsNone(t *testing.T) {
	var v Value
	assert.True(t, v.IsNone())
	assert.Equal(t, KindNone, v.Kind())
	assert.Nil(t, v.List())
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.Equal(None()))
}

func TestMulti_EmptyIsNone(t *testing.T) {
	assert.True(t, Multi().IsNone())
	assert.True(t, Multi([]options.Option{}...).IsNone())
}

func TestMulti_CopiesInput(t *testing.T) {
	opts := []options.Option{apple, banana}
	v := Multi(opts...)
	opts[0] = cherry
	assert.Equal(t, []string{"a", "b"}, v.Values())

	list := v.List()
	list[0] = cherry
	assert.Equal(t, []string{"a", "b"}, v.Values())
}

func TestValueAccessors(t *testing.T) {
	s := Single(apple)
	o, ok := s.Option()
	require.True(t, ok)
	assert.Equal(t, apple, o)
	assert.Equal(t, []options.Option{apple}, s.List())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("b"))
	assert.Equal(t, "Apple", s.String())

	m := Multi(apple, banana)
	_, ok = m.Option()
	assert.False(t, ok)
	assert.Equal(t, KindMulti, m.Kind())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "Apple, Banana", m.String())
}

func TestEqual(t *testing.T) {
	assert.True(t, Multi(apple, banana).Equal(Multi(apple, banana)))
	assert.False(t, Multi(apple, banana).Equal(Multi(banana, apple)))
	assert.False(t, Single(apple).Equal(Multi(apple)))
	assert.False(t, Single(apple).Equal(Single(banana)))
}

func TestExclusions(t *testing.T) {
	assert.Nil(t, Exclusions(ModeSingle, Single(apple)))
	assert.Nil(t, Exclusions(ModeMultiple, None()))
	assert.Equal(t, []string{"a", "b"}, Exclusions(ModeMultiple, Multi(apple, banana)))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "single", ModeSingle.String())
	assert.Equal(t, "multiple", ModeMultiple.String())
}
