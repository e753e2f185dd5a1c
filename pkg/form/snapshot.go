package form

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Reserved urlencoded keys carrying comma-separated interaction paths.
const (
	TouchedKey = "_touched"
	DirtyKey   = "_dirty"
)

// Snapshot is the serialized state of a form: values shaped like the form
// (objects for groups, lists for arrays) and the paths the user touched or
// changed.
type Snapshot struct {
	Values  map[string]any `json:"values"`
	Touched []string       `json:"touched,omitempty"`
	Dirty   []string       `json:"dirty,omitempty"`
}

// Apply loads s into g. Unknown keys and paths are ignored; values whose
// shape does not fit the form are reported as ErrInvalidSnapshot after the
// rest of the snapshot has been applied.
func (g *Group) Apply(s Snapshot) error {
	errs := applyValues(g, "", s.Values)

	for _, path := range s.Dirty {
		if c, ok := g.Lookup(path); ok {
			markDirty(c)
		}
	}
	for _, path := range s.Touched {
		if c, ok := g.Lookup(path); ok {
			c.MarkTouched()
		}
	}
	return errors.Join(errs...)
}

func applyValues(g *Group, prefix string, values map[string]any) []error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(values)) {
		path := joinPath(prefix, name)
		switch c := g.index[name].(type) {
		case *Field:
			v, ok := c.coerce(values[name])
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s expects a boolean", ErrInvalidSnapshot, path))
				continue
			}
			c.Patch(v)
		case *Group:
			sub, ok := values[name].(map[string]any)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s expects an object", ErrInvalidSnapshot, path))
				continue
			}
			errs = append(errs, applyValues(c, path, sub)...)
		case *Array:
			items, ok := asList(values[name])
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s expects a list", ErrInvalidSnapshot, path))
				continue
			}
			for c.Len() < len(items) {
				c.Push()
			}
			for c.Len() > len(items) {
				c.RemoveAt(c.Len() - 1)
			}
			for i, item := range items {
				itemPath := joinPath(path, strconv.Itoa(i))
				sub, ok := item.(map[string]any)
				if !ok {
					errs = append(errs, fmt.Errorf("%w: %s expects an object", ErrInvalidSnapshot, itemPath))
					continue
				}
				errs = append(errs, applyValues(c.At(i), itemPath, sub)...)
			}
		}
	}
	return errs
}

func asList(v any) ([]any, bool) {
	switch items := v.(type) {
	case nil:
		return nil, true
	case []any:
		return items, true
	case []map[string]any:
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out, true
	}
	return nil, false
}

func markDirty(c Control) {
	switch v := c.(type) {
	case *Field:
		v.MarkDirty()
	case *Group:
		for _, child := range v.controls {
			markDirty(child)
		}
	case *Array:
		for _, item := range v.items {
			markDirty(item)
		}
	}
}

// Snapshot captures the current values and interaction flags of g. Only
// field paths are listed as touched or dirty.
func (g *Group) Snapshot() Snapshot {
	s := Snapshot{Values: g.Values()}
	Walk(g, func(path string, c Control) {
		f, ok := c.(*Field)
		if !ok {
			return
		}
		if f.Touched() {
			s.Touched = append(s.Touched, path)
		}
		if f.Dirty() {
			s.Dirty = append(s.Dirty, path)
		}
	})
	return s
}

// UnmarshalFormValues builds the snapshot from urlencoded values. Keys are
// dotted paths; numeric segments index arrays, so "addresses.1.city" is the
// city of the second address. The last value of a repeated key wins.
// TouchedKey and DirtyKey carry comma-separated path lists.
func (s *Snapshot) UnmarshalFormValues(values url.Values) error {
	root := make(map[string]any)
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		switch key {
		case TouchedKey:
			s.Touched = append(s.Touched, splitList(vals)...)
			continue
		case DirtyKey:
			s.Dirty = append(s.Dirty, splitList(vals)...)
			continue
		}

		segments := splitPath(key)
		if len(segments) == 0 {
			continue
		}
		if err := setPath(root, segments, vals[len(vals)-1]); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidFormValues, key, err)
		}
	}

	for k, child := range root {
		converted, err := listify(child)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidFormValues, k, err)
		}
		root[k] = converted
	}
	s.Values = root
	return nil
}

func splitList(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func setPath(node map[string]any, segments []string, value string) error {
	for _, seg := range segments[:len(segments)-1] {
		next, exists := node[seg]
		if !exists {
			child := make(map[string]any)
			node[seg] = child
			node = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%q holds a value and cannot hold fields", seg)
		}
		node = child
	}

	last := segments[len(segments)-1]
	if existing, ok := node[last].(map[string]any); ok && len(existing) > 0 {
		return fmt.Errorf("%q holds fields and cannot hold a value", last)
	}
	node[last] = value
	return nil
}

// listify turns maps whose keys are all indexes into lists, recursively.
// Missing indexes become empty entries.
func listify(v any) (any, error) {
	node, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}

	for k, child := range node {
		converted, err := listify(child)
		if err != nil {
			return nil, err
		}
		node[k] = converted
	}

	if len(node) == 0 {
		return node, nil
	}
	maxIndex := -1
	for k := range node {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			return node, nil
		}
		maxIndex = max(maxIndex, i)
	}
	if maxIndex >= 1024 {
		return nil, fmt.Errorf("index %d is out of range", maxIndex)
	}

	list := make([]any, maxIndex+1)
	for i := range list {
		list[i] = map[string]any{}
	}
	for k, child := range node {
		i, _ := strconv.Atoi(k)
		list[i] = child
	}
	return list, nil
}
