package form

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field is a single named value with its rules and interaction flags.
// Its Result is refreshed whenever the value or the rule set changes.
type Field struct {
	name        string
	value       any
	initial     any
	touched     bool
	dirty       bool
	rules       []validator.Rule
	errors      Result
	subscribers []func(*Field)
}

// NewField creates a pristine, untouched field holding value.
func NewField(name string, value any, rules ...validator.Rule) *Field {
	f := &Field{
		name:    name,
		value:   value,
		initial: value,
		rules:   slices.Clone(rules),
	}
	f.errors = Evaluate(f, f.rules)
	return f
}

func (f *Field) Name() string { return f.name }
func (f *Field) Value() any   { return f.value }

func (f *Field) Touched() bool { return f.touched }
func (f *Field) Dirty() bool   { return f.dirty }

// MarkTouched records that the user visited the field.
func (f *Field) MarkTouched() { f.touched = true }

// MarkDirty records that the user changed the value.
func (f *Field) MarkDirty() { f.dirty = true }

// SetValue stores a user-entered value: the field becomes dirty, is
// re-evaluated and subscribers are notified.
func (f *Field) SetValue(value any) {
	f.dirty = true
	f.Patch(value)
}

// Patch stores a value programmatically without touching the dirty flag.
func (f *Field) Patch(value any) {
	f.value = value
	f.errors = Evaluate(f, f.rules)
	for _, fn := range f.subscribers {
		fn(f)
	}
}

// Reset restores the initial value and clears touched and dirty.
func (f *Field) Reset() {
	f.touched = false
	f.dirty = false
	f.Patch(f.initial)
}

// Subscribe registers fn to run after every value change.
func (f *Field) Subscribe(fn func(*Field)) {
	if fn != nil {
		f.subscribers = append(f.subscribers, fn)
	}
}

// Rules returns a copy of the current rule set.
func (f *Field) Rules() []validator.Rule {
	return slices.Clone(f.rules)
}

// SetRules replaces the rule set and re-evaluates the field.
func (f *Field) SetRules(rules ...validator.Rule) Result {
	f.rules = slices.Clone(rules)
	return f.Validate()
}

// Validate re-runs the rule set against the current value.
func (f *Field) Validate() Result {
	f.errors = Evaluate(f, f.rules)
	return f.errors
}

// Errors returns the failing rules from the last evaluation.
func (f *Field) Errors() Result { return f.errors }

func (f *Field) Valid() bool { return len(f.errors) == 0 }

// failing returns the failing rule names in declaration order.
func (f *Field) failing() []string {
	var names []string
	for _, r := range f.rules {
		if f.errors.Has(r.Name) && !slices.Contains(names, r.Name) {
			names = append(names, r.Name)
		}
	}
	for _, name := range f.errors.Names() {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

func (f *Field) params(rule string) map[string]any {
	for _, r := range f.rules {
		if r.Name == rule {
			return r.Params()
		}
	}
	return nil
}

// coerce converts submitted text to the type of the field's initial value so
// checkboxes and numeric inputs keep their natural types. A boolean field
// reports false when the value cannot be read as a boolean. Numeric fields
// keep unparsable text so their rules can report it.
func (f *Field) coerce(value any) (any, bool) {
	if _, ok := f.initial.(bool); ok {
		switch v := value.(type) {
		case bool:
			return v, true
		case nil:
			return false, true
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "on", "yes", "1":
				return true, true
			case "false", "off", "no", "0", "":
				return false, true
			}
		}
		return value, false
	}

	s, ok := value.(string)
	if !ok {
		return value, true
	}
	switch f.initial.(type) {
	case int, int64, float64:
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n, true
		}
	}
	return value, true
}
