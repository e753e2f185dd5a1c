package form

import (
	"slices"
	"strconv"
)

// Array is an ordered, growable sequence of groups built from one factory,
// such as a list of addresses. Entries are named by their index.
type Array struct {
	name    string
	factory func() *Group
	items   []*Group
}

// NewArray creates an array with size entries built by factory.
func NewArray(name string, factory func() *Group, size int) *Array {
	a := &Array{name: name, factory: factory}
	for range size {
		a.Push()
	}
	return a
}

func (a *Array) Name() string { return a.name }

// Push appends a freshly built entry and returns it.
func (a *Array) Push() *Group {
	item := a.factory()
	if item == nil {
		item = NewGroup("")
	}
	item.name = strconv.Itoa(len(a.items))
	a.items = append(a.items, item)
	return item
}

// RemoveAt drops the entry at i and renumbers the rest.
func (a *Array) RemoveAt(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.items = slices.Delete(a.items, i, i+1)
	for j := i; j < len(a.items); j++ {
		a.items[j].name = strconv.Itoa(j)
	}
	return true
}

// At returns the entry at i, or nil when out of range.
func (a *Array) At(i int) *Group {
	if i < 0 || i >= len(a.items) {
		return nil
	}
	return a.items[i]
}

func (a *Array) Len() int { return len(a.items) }

// Items returns the entries in order.
func (a *Array) Items() []*Group { return slices.Clone(a.items) }

// Template builds an unattached entry, used to describe the entry shape.
func (a *Array) Template() *Group { return a.factory() }

func (a *Array) Value() any {
	out := make([]any, len(a.items))
	for i, item := range a.items {
		out[i] = item.Value()
	}
	return out
}

func (a *Array) Touched() bool {
	return slices.ContainsFunc(a.items, (*Group).Touched)
}

func (a *Array) Dirty() bool {
	return slices.ContainsFunc(a.items, (*Group).Dirty)
}

func (a *Array) MarkTouched() {
	for _, item := range a.items {
		item.MarkTouched()
	}
}

// Errors is always nil: arrays carry no rules of their own.
func (a *Array) Errors() Result { return nil }

// Valid is the conjunction across all entries.
func (a *Array) Valid() bool {
	for _, item := range a.items {
		if !item.Valid() {
			return false
		}
	}
	return true
}
