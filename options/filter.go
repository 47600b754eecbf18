package options

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher reports whether an option label matches the search query.
type Matcher func(label, query string) bool

// ContainsFold matches when label contains query, ignoring case. An empty
// query matches everything.
func ContainsFold(label, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(query))
}

// FuzzyMatch matches when the query's characters appear in label in order,
// the way fuzzy finders do. An empty query matches everything.
func FuzzyMatch(label, query string) bool {
	if query == "" {
		return true
	}
	return len(fuzzy.Find(query, []string{label})) > 0
}

// MatcherByName resolves a matcher name from a definition file.
func MatcherByName(name string) (Matcher, bool) {
	switch name {
	case "", "substring":
		return ContainsFold, true
	case "fuzzy":
		return FuzzyMatch, true
	}
	return nil, false
}

// keepLeaves returns the items of l whose leaves satisfy keep. Groups are
// narrowed to their surviving leaves and dropped when none survive.
func keepLeaves(l List, keep func(Option) bool) List {
	out := make(List, 0, len(l))
	for _, it := range l {
		switch v := it.(type) {
		case Option:
			if keep(v) {
				out = append(out, v)
			}
		case Group:
			var kept []Option
			for _, o := range v.Options {
				if keep(o) {
					kept = append(kept, o)
				}
			}
			if len(kept) > 0 {
				out = append(out, Group{Label: v.Label, Options: kept})
			}
		}
	}
	return out
}

// FilterText keeps the leaves whose label matches query. Group labels are
// never matched. A nil matcher means ContainsFold.
func FilterText(l List, query string, match Matcher) List {
	if match == nil {
		match = ContainsFold
	}
	return keepLeaves(l, func(o Option) bool {
		return match(o.Label, query)
	})
}

// ExcludeValues drops the leaves whose value is in values.
func ExcludeValues(l List, values []string) List {
	if len(values) == 0 {
		return keepLeaves(l, func(Option) bool { return true })
	}
	skip := make(map[string]struct{}, len(values))
	for _, v := range values {
		skip[v] = struct{}{}
	}
	return keepLeaves(l, func(o Option) bool {
		_, found := skip[o.Value]
		return !found
	})
}

// Query bundles the inputs of Project.
type Query struct {
	Text    string
	Exclude []string // values already selected in multi-select mode
	Matcher Matcher
}

// Project derives the visible list: the text filter first, then the
// exclusion of already-selected values. Both are leaf-wise intersections so
// the order does not change the result.
func Project(l List, q Query) List {
	return ExcludeValues(FilterText(l, q.Text, q.Matcher), q.Exclude)
}
