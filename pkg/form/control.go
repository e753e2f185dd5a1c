package form

import (
	"slices"
	"strings"
)

// Result maps failing rule names to true. A nil or empty Result means the
// control is valid, or that a cross-field rule withheld its verdict.
type Result map[string]bool

// Has reports whether rule failed.
func (r Result) Has(rule string) bool {
	return r[rule]
}

// Names returns the failing rule names in lexical order.
func (r Result) Names() []string {
	names := make([]string, 0, len(r))
	for name, failed := range r {
		if failed {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (r Result) merge(other Result) Result {
	for name, failed := range other {
		if !failed {
			continue
		}
		if r == nil {
			r = make(Result, len(other))
		}
		r[name] = true
	}
	return r
}

// Control is implemented by Field, Group and Array.
type Control interface {
	Name() string
	Value() any
	Touched() bool
	Dirty() bool
	MarkTouched()
	// Errors returns the control's own failing rules, not its children's.
	Errors() Result
	// Valid reports whether the control and everything below it passes.
	Valid() bool
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func splitPath(path string) []string {
	path = strings.Trim(path, ".")
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Walk visits every control below g depth-first, in declaration order, passing
// its dotted path. Array entries are addressed by index.
func Walk(g *Group, fn func(path string, c Control)) {
	walk(g, "", fn)
}

func walk(g *Group, prefix string, fn func(path string, c Control)) {
	for _, c := range g.controls {
		path := joinPath(prefix, c.Name())
		fn(path, c)
		switch v := c.(type) {
		case *Group:
			walk(v, path, fn)
		case *Array:
			for _, item := range v.items {
				itemPath := joinPath(path, item.name)
				fn(itemPath, item)
				walk(item, itemPath, fn)
			}
		}
	}
}
