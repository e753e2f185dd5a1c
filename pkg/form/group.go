package form

import (
	"slices"
	"strconv"
)

// GroupRule is a cross-field rule evaluated against a group's children.
// Check returns the failing rule names, or nil for pass and for "no verdict".
type GroupRule struct {
	Name  string
	Check func(g *Group) Result
}

// Group is a named, ordered collection of controls with optional
// cross-field rules. Children are addressed through an explicit name table.
type Group struct {
	name     string
	controls []Control
	index    map[string]Control
	rules    []GroupRule
}

// NewGroup creates a group holding controls in the given order.
func NewGroup(name string, controls ...Control) *Group {
	g := &Group{name: name, index: make(map[string]Control, len(controls))}
	for _, c := range controls {
		g.Add(c)
	}
	return g
}

// WithRules appends cross-field rules and returns g for chaining.
func (g *Group) WithRules(rules ...GroupRule) *Group {
	g.rules = append(g.rules, rules...)
	return g
}

// Add inserts c, replacing an existing control with the same name in place.
func (g *Group) Add(c Control) {
	if c == nil {
		return
	}
	if _, exists := g.index[c.Name()]; exists {
		for i, existing := range g.controls {
			if existing.Name() == c.Name() {
				g.controls[i] = c
			}
		}
	} else {
		g.controls = append(g.controls, c)
	}
	g.index[c.Name()] = c
}

func (g *Group) Name() string { return g.name }

// Controls returns the children in declaration order.
func (g *Group) Controls() []Control { return slices.Clone(g.controls) }

// Rules returns the cross-field rules.
func (g *Group) Rules() []GroupRule { return slices.Clone(g.rules) }

// Get returns the direct child called name.
func (g *Group) Get(name string) (Control, bool) {
	c, ok := g.index[name]
	return c, ok
}

// Field returns the direct child field called name, or nil.
func (g *Group) Field(name string) *Field {
	f, _ := g.index[name].(*Field)
	return f
}

// Group returns the direct child group called name, or nil.
func (g *Group) Group(name string) *Group {
	sub, _ := g.index[name].(*Group)
	return sub
}

// Array returns the direct child array called name, or nil.
func (g *Group) Array(name string) *Array {
	a, _ := g.index[name].(*Array)
	return a
}

// Lookup resolves a dotted path such as "emailGroup.email" or
// "addresses.0.city". Numeric segments index into arrays.
func (g *Group) Lookup(path string) (Control, bool) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return g, true
	}

	var current Control = g
	for _, seg := range segments {
		switch c := current.(type) {
		case *Group:
			next, ok := c.index[seg]
			if !ok {
				return nil, false
			}
			current = next
		case *Array:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, false
			}
			item := c.At(i)
			if item == nil {
				return nil, false
			}
			current = item
		default:
			return nil, false
		}
	}
	return current, true
}

// LookupField resolves path to a field, or nil.
func (g *Group) LookupField(path string) *Field {
	c, _ := g.Lookup(path)
	f, _ := c.(*Field)
	return f
}

// Value returns the group's values as a nested map.
func (g *Group) Value() any {
	out := make(map[string]any, len(g.controls))
	for _, c := range g.controls {
		out[c.Name()] = c.Value()
	}
	return out
}

// Values is Value with its concrete type.
func (g *Group) Values() map[string]any {
	return g.Value().(map[string]any)
}

// Touched reports whether any child was touched.
func (g *Group) Touched() bool {
	return slices.ContainsFunc(g.controls, Control.Touched)
}

// Dirty reports whether any child was changed.
func (g *Group) Dirty() bool {
	return slices.ContainsFunc(g.controls, Control.Dirty)
}

// MarkTouched marks every descendant as touched.
func (g *Group) MarkTouched() {
	for _, c := range g.controls {
		c.MarkTouched()
	}
}

// Errors evaluates the group's own cross-field rules.
func (g *Group) Errors() Result {
	return EvaluateCrossField(g)
}

// Valid is the conjunction of every child's validity and the group's own rules.
func (g *Group) Valid() bool {
	for _, c := range g.controls {
		if !c.Valid() {
			return false
		}
	}
	return len(g.Errors()) == 0
}

// Validate re-evaluates every field, then every cross-field rule, and reports
// failures by path. Group-level failures are keyed by the group's path; the
// root group's own failures use the empty path.
func (g *Group) Validate() Report {
	report := Report{Errors: map[string]Result{}}

	Walk(g, func(path string, c Control) {
		if f, ok := c.(*Field); ok {
			if res := f.Validate(); len(res) > 0 {
				report.Errors[path] = res
			}
		}
	})
	Walk(g, func(path string, c Control) {
		if sub, ok := c.(*Group); ok {
			if res := sub.Errors(); len(res) > 0 {
				report.Errors[path] = res
			}
		}
	})
	if res := g.Errors(); len(res) > 0 {
		report.Errors[""] = res
	}

	report.Valid = len(report.Errors) == 0
	return report
}
