package options

// RawItem is the loosely typed shape callers hand in from definition files:
// Disabled may be absent, and an entry carrying Options is a group whose own
// Value is ignored.
type RawItem struct {
	Value    string    `yaml:"value,omitempty"`
	Label    string    `yaml:"label"`
	Disabled *bool     `yaml:"disabled,omitempty"`
	Options  []RawItem `yaml:"options,omitempty"`
}

// IsGroup reports whether r describes a group.
func (r RawItem) IsGroup() bool {
	return r.Options != nil
}

// Normalize returns a deep copy of l in which every leaf carries a concrete
// Disabled flag. Nil items are dropped and a group with nil options gets an
// empty slice. The input is never modified.
func Normalize(l List) List {
	out := make(List, 0, len(l))
	for _, it := range l {
		switch v := it.(type) {
		case Option:
			out = append(out, v)
		case *Option:
			if v != nil {
				out = append(out, *v)
			}
		case Group:
			out = append(out, copyGroup(v))
		case *Group:
			if v != nil {
				out = append(out, copyGroup(*v))
			}
		}
	}
	return out
}

func copyGroup(g Group) Group {
	opts := make([]Option, len(g.Options))
	copy(opts, g.Options)
	return Group{Label: g.Label, Options: opts}
}

// NormalizeRaw converts raw items into a normalized List. A missing
// disabled flag means the option is enabled. Nested groups below the first
// level are flattened into their parent group.
func NormalizeRaw(raw []RawItem) List {
	out := make(List, 0, len(raw))
	for _, r := range raw {
		if r.IsGroup() {
			g := Group{Label: r.Label, Options: make([]Option, 0, len(r.Options))}
			for _, child := range r.Options {
				g.Options = append(g.Options, rawLeaves(child)...)
			}
			out = append(out, g)
			continue
		}
		out = append(out, rawOption(r))
	}
	return out
}

func rawLeaves(r RawItem) []Option {
	if !r.IsGroup() {
		return []Option{rawOption(r)}
	}
	var out []Option
	for _, child := range r.Options {
		out = append(out, rawLeaves(child)...)
	}
	return out
}

func rawOption(r RawItem) Option {
	disabled := false
	if r.Disabled != nil {
		disabled = *r.Disabled
	}
	return Option{Value: r.Value, Label: r.Label, Disabled: disabled}
}

// Raw converts a List back into its raw shape with explicit disabled flags.
func Raw(l List) []RawItem {
	out := make([]RawItem, 0, len(l))
	for _, it := range l {
		switch v := it.(type) {
		case Option:
			out = append(out, rawFromOption(v))
		case Group:
			g := RawItem{Label: v.Label, Options: make([]RawItem, 0, len(v.Options))}
			for _, o := range v.Options {
				g.Options = append(g.Options, rawFromOption(o))
			}
			out = append(out, g)
		}
	}
	return out
}

func rawFromOption(o Option) RawItem {
	r := RawItem{Value: o.Value, Label: o.Label}
	if o.Disabled {
		d := true
		r.Disabled = &d
	}
	return r
}
