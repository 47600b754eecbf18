// Package options holds the option data model of the dropdown and the pure
// transforms that turn a caller-supplied option list into the rows a user
// can pick from.
package options

// Option is a selectable leaf. Value is its identity.
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// Group is a labelled run of options. A group is never selectable itself.
type Group struct {
	Label   string
	Options []Option
}

// Item is either an Option or a Group.
type Item interface {
	item()
}

func (Option) item() {}
func (Group) item()  {}

// List is an ordered sequence of options and groups. Order is significant
// and is preserved by every transform in this package.
type List []Item

// Leaves returns every leaf option of l in display order, flattening groups.
func Leaves(l List) []Option {
	var out []Option
	for _, it := range l {
		switch v := it.(type) {
		case Option:
			out = append(out, v)
		case Group:
			out = append(out, v.Options...)
		}
	}
	return out
}

// Find returns the first leaf whose value equals value.
func Find(l List, value string) (Option, bool) {
	for _, o := range Leaves(l) {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// LeafCount returns the number of leaf options in l.
func LeafCount(l List) int {
	n := 0
	for _, it := range l {
		switch v := it.(type) {
		case Option:
			n++
		case Group:
			n += len(v.Options)
		}
	}
	return n
}
