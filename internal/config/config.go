package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ruminaider/dropdown/dropdown"
	"github.com/ruminaider/dropdown/options"
	"github.com/ruminaider/dropdown/selection"
	"go.yaml.in/yaml/v3"
)

var (
	// ErrNotFound is returned by Load when the definition file does not exist.
	ErrNotFound = errors.New("definition not found")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid definition")
)

// Definition represents a dropdown definition file.
type Definition struct {
	Placeholder       string            `yaml:"placeholder,omitempty"`
	SearchPlaceholder string            `yaml:"search_placeholder,omitempty"`
	NoOptionsMessage  string            `yaml:"no_options_message,omitempty"`
	Multiple          bool              `yaml:"multiple,omitempty"`
	Clearable         bool              `yaml:"clearable,omitempty"`
	Searchable        bool              `yaml:"searchable,omitempty"`
	Disabled          bool              `yaml:"disabled,omitempty"`
	Loading           bool              `yaml:"loading,omitempty"`
	MenuOpen          bool              `yaml:"menu_open,omitempty"`
	Matcher           string            `yaml:"matcher,omitempty"`
	MaxHeight         int               `yaml:"max_height,omitempty"`
	Options           []options.RawItem `yaml:"options"`
	Value             []string          `yaml:"value,omitempty"`
}

// Selection is the YAML shape printed when a dropdown run ends.
type Selection struct {
	Mode   string           `yaml:"mode"`
	Values []string         `yaml:"values"`
	Labels []string         `yaml:"labels"`
	Empty  bool             `yaml:"empty,omitempty"`
	Items  []options.Option `yaml:"-"`
}

// Parse parses definition bytes and validates the result.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("parsing definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Load reads and parses the definition at path.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Definition{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Definition{}, fmt.Errorf("reading definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Marshal serializes a Definition to YAML bytes.
func Marshal(def Definition) ([]byte, error) {
	return yaml.Marshal(def)
}

// Validate checks the definition for problems the widget cannot default
// its way around.
func (d Definition) Validate() error {
	if _, ok := options.MatcherByName(d.Matcher); !ok {
		return fmt.Errorf("%w: unknown matcher %q", ErrInvalid, d.Matcher)
	}
	if d.MaxHeight < 0 {
		return fmt.Errorf("%w: max_height must not be negative", ErrInvalid)
	}
	if err := validateItems(d.Options, ""); err != nil {
		return err
	}

	list := d.List()
	seen := make(map[string]bool)
	for _, o := range options.Leaves(list) {
		if seen[o.Value] {
			return fmt.Errorf("%w: duplicate option value %q", ErrInvalid, o.Value)
		}
		seen[o.Value] = true
	}

	if !d.Multiple && len(d.Value) > 1 {
		return fmt.Errorf("%w: single selection has %d initial values", ErrInvalid, len(d.Value))
	}
	for _, v := range d.Value {
		if !seen[v] {
			return fmt.Errorf("%w: initial value %q is not an option", ErrInvalid, v)
		}
	}
	return nil
}

func validateItems(items []options.RawItem, parent string) error {
	for i, it := range items {
		where := fmt.Sprintf("options[%d]", i)
		if parent != "" {
			where = parent + "." + where
		}
		if it.IsGroup() {
			if it.Value != "" {
				return fmt.Errorf("%w: %s: group %q has a value", ErrInvalid, where, it.Label)
			}
			if err := validateItems(it.Options, where); err != nil {
				return err
			}
			continue
		}
		if it.Value == "" {
			return fmt.Errorf("%w: %s: option %q has no value", ErrInvalid, where, it.Label)
		}
	}
	return nil
}

// List returns the normalized option list.
func (d Definition) List() options.List {
	return options.NormalizeRaw(d.Options)
}

// Mode returns the selection mode the definition asks for.
func (d Definition) Mode() selection.Mode {
	if d.Multiple {
		return selection.ModeMultiple
	}
	return selection.ModeSingle
}

// InitialValue resolves the value field against the options.
func (d Definition) InitialValue() selection.Value {
	list := d.List()
	var picked []options.Option
	for _, v := range d.Value {
		if o, ok := options.Find(list, v); ok {
			picked = append(picked, o)
		}
	}
	if len(picked) == 0 {
		return selection.None()
	}
	if d.Mode() == selection.ModeMultiple {
		return selection.Multi(picked...)
	}
	return selection.Single(picked[0])
}

// DropdownConfig builds the widget configuration for the definition.
func (d Definition) DropdownConfig() dropdown.Config {
	match, _ := options.MatcherByName(d.Matcher)
	return dropdown.Config{
		Options:           d.List(),
		Value:             d.InitialValue(),
		Placeholder:       d.Placeholder,
		SearchPlaceholder: d.SearchPlaceholder,
		NoOptionsMessage:  d.NoOptionsMessage,
		Multiple:          d.Multiple,
		Clearable:         d.Clearable,
		Searchable:        d.Searchable,
		Disabled:          d.Disabled,
		Loading:           d.Loading,
		MenuOpen:          d.MenuOpen,
		Matcher:           match,
		MaxHeight:         d.MaxHeight,
	}
}

// NoOptions returns the configured message or the widget default.
func (d Definition) NoOptions() string {
	if d.NoOptionsMessage != "" {
		return d.NoOptionsMessage
	}
	return dropdown.DefaultNoOptionsMessage
}

// SelectionOf describes v for output.
func SelectionOf(mode selection.Mode, v selection.Value) Selection {
	s := Selection{
		Mode:   mode.String(),
		Values: []string{},
		Labels: []string{},
		Empty:  v.IsNone(),
		Items:  v.List(),
	}
	for _, o := range s.Items {
		s.Values = append(s.Values, o.Value)
		s.Labels = append(s.Labels, o.Label)
	}
	return s
}

// MarshalSelection serializes a selection to YAML bytes.
func MarshalSelection(s Selection) ([]byte, error) {
	return yaml.Marshal(s)
}

// ParseValues splits a comma separated flag value, dropping blanks.
func ParseValues(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Sample returns the definition written by "dropdown init".
func Sample(multiple, searchable, clearable bool) Definition {
	def := Definition{
		Multiple:   multiple,
		Searchable: searchable,
		Clearable:  clearable,
		Options: []options.RawItem{
			{Value: "apple", Label: "Apple"},
			{Value: "banana", Label: "Banana"},
			{Label: "Citrus", Options: []options.RawItem{
				{Value: "orange", Label: "Orange"},
				{Value: "lemon", Label: "Lemon", Disabled: ptr(false)},
				{Value: "yuzu", Label: "Yuzu", Disabled: ptr(true)},
			}},
			{Label: "Berries", Options: []options.RawItem{
				{Value: "strawberry", Label: "Strawberry"},
				{Value: "blueberry", Label: "Blueberry"},
			}},
		},
	}
	if searchable {
		def.Matcher = "substring"
	}
	return def
}

func ptr[T any](v T) *T { return &v }
