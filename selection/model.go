package selection

import "github.com/ruminaider/dropdown/options"

// Transition is the outcome of a selection operation. Changed is false for
// no-ops, in which case Next equals the current value. Close asks the
// interaction layer to close the menu.
type Transition struct {
	Next    Value
	Changed bool
	Close   bool
}

func unchanged(current Value) Transition {
	return Transition{Next: current}
}

// Apply selects candidate. Re-selecting the current single option leaves
// the value alone but still closes the menu. Single mode replaces the value
// and closes the menu; multi mode appends to the list and keeps the menu
// open. Callers must not pass disabled options.
func Apply(mode Mode, current Value, candidate options.Option) Transition {
	if o, ok := current.Option(); ok && o.Value == candidate.Value {
		tr := unchanged(current)
		tr.Close = true
		return tr
	}

	if mode == ModeSingle {
		return Transition{Next: Single(candidate), Changed: true, Close: true}
	}

	if current.Contains(candidate.Value) {
		return unchanged(current)
	}
	return Transition{Next: Multi(append(current.List(), candidate)...), Changed: true}
}

// Remove drops every selected option sharing candidate's value. It only
// applies to multi mode; removing the last option yields None.
func Remove(mode Mode, current Value, candidate options.Option) Transition {
	if mode != ModeMultiple || current.Kind() != KindMulti {
		return unchanged(current)
	}

	kept := make([]options.Option, 0, current.Len())
	for _, o := range current.List() {
		if o.Value != candidate.Value {
			kept = append(kept, o)
		}
	}
	if len(kept) == current.Len() {
		return unchanged(current)
	}
	return Transition{Next: Multi(kept...), Changed: true}
}

// Clear empties the selection.
func Clear(current Value) Transition {
	if current.IsNone() {
		return unchanged(current)
	}
	return Transition{Next: None(), Changed: true}
}

// Handle is the capability the component passes to its renderers and
// dispatchers: the current value and the selection operations, without the
// rest of the component. Operations only compute a Transition; committing
// it is up to whoever holds the handle.
type Handle interface {
	Value() Value
	Apply(o options.Option) Transition
	Remove(o options.Option) Transition
	Clear() Transition
}

// Bound is a Handle over a fixed mode and value.
type Bound struct {
	Mode    Mode
	Current Value
}

func (b Bound) Value() Value { return b.Current }

func (b Bound) Apply(o options.Option) Transition { return Apply(b.Mode, b.Current, o) }

func (b Bound) Remove(o options.Option) Transition { return Remove(b.Mode, b.Current, o) }

func (b Bound) Clear() Transition { return Clear(b.Current) }
