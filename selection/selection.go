// Package selection models the value of a dropdown and the transitions that
// produce the next value when the user picks or removes an option. It holds
// no state of its own: the host owns the current value and feeds it back in.
package selection

import (
	"strings"

	"github.com/ruminaider/dropdown/options"
)

// Mode is fixed for the lifetime of a dropdown.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
)

func (m Mode) String() string {
	if m == ModeMultiple {
		return "multiple"
	}
	return "single"
}

// Kind tells which variant a Value holds.
type Kind int

const (
	KindNone Kind = iota
	KindSingle
	KindMulti
)

// Value is the current selection: nothing, one option (single mode) or an
// ordered list of options (multi mode). The zero Value is None.
type Value struct {
	kind Kind
	one  options.Option
	many []options.Option
}

// None is the empty selection.
func None() Value { return Value{} }

// Single selects exactly one option.
func Single(o options.Option) Value {
	return Value{kind: KindSingle, one: o}
}

// Multi selects opts in order. An empty list is None, never an empty
// multi-selection.
func Multi(opts ...options.Option) Value {
	if len(opts) == 0 {
		return None()
	}
	many := make([]options.Option, len(opts))
	copy(many, opts)
	return Value{kind: KindMulti, many: many}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether nothing is selected.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Option returns the single selected option.
func (v Value) Option() (options.Option, bool) {
	return v.one, v.kind == KindSingle
}

// List returns a copy of the selected options, in selection order. A single
// selection is returned as a one-element list.
func (v Value) List() []options.Option {
	switch v.kind {
	case KindSingle:
		return []options.Option{v.one}
	case KindMulti:
		out := make([]options.Option, len(v.many))
		copy(out, v.many)
		return out
	}
	return nil
}

// Values returns the option values of the selection in order.
func (v Value) Values() []string {
	var out []string
	for _, o := range v.List() {
		out = append(out, o.Value)
	}
	return out
}

// Len returns the number of selected options.
func (v Value) Len() int {
	switch v.kind {
	case KindSingle:
		return 1
	case KindMulti:
		return len(v.many)
	}
	return 0
}

// Contains reports whether an option with the given value is selected.
func (v Value) Contains(value string) bool {
	for _, o := range v.List() {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Equal reports whether v and w hold the same variant and option values.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind || v.Len() != w.Len() {
		return false
	}
	a, b := v.List(), w.List()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the selected labels, comma separated.
func (v Value) String() string {
	labels := make([]string, 0, v.Len())
	for _, o := range v.List() {
		labels = append(labels, o.Label)
	}
	return strings.Join(labels, ", ")
}

// Exclusions returns the values the visible list must hide: the current
// multi-selection in multi mode, nothing otherwise.
func Exclusions(mode Mode, v Value) []string {
	if mode != ModeMultiple || v.kind != KindMulti {
		return nil
	}
	return v.Values()
}
