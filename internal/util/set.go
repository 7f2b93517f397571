package util

import (
	"fmt"
	"sort"
	"strings"
)

// KeySet is a set that uses a comparable element type directly as a map key.
// It is used throughout the grammar analyzer to hold FIRST/FOLLOW entries
// without resorting to a hand-rolled set of Symbol.
type KeySet[E comparable] map[E]struct{}

// NewKeySet returns an empty KeySet, optionally seeded from existing sets.
func NewKeySet[E comparable](of ...map[E]struct{}) KeySet[E] {
	s := KeySet[E]{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// Add adds value to the set. Returns true if the set changed (value was not
// already present).
func (s KeySet[E]) Add(value E) bool {
	if _, ok := s[value]; ok {
		return false
	}
	s[value] = struct{}{}
	return true
}

// AddAll adds every element of o to s. Returns true if s changed.
func (s KeySet[E]) AddAll(o KeySet[E]) bool {
	changed := false
	for k := range o {
		if s.Add(k) {
			changed = true
		}
	}
	return changed
}

// Has reports whether value is a member of the set.
func (s KeySet[E]) Has(value E) bool {
	_, ok := s[value]
	return ok
}

// Remove removes value from the set, if present.
func (s KeySet[E]) Remove(value E) {
	delete(s, value)
}

// Len returns the number of elements in the set.
func (s KeySet[E]) Len() int {
	return len(s)
}

// Empty reports whether the set has no elements.
func (s KeySet[E]) Empty() bool {
	return len(s) == 0
}

// Elements returns the members of the set in no particular order.
func (s KeySet[E]) Elements() []E {
	els := make([]E, 0, len(s))
	for k := range s {
		els = append(els, k)
	}
	return els
}

// Copy returns a shallow copy of the set.
func (s KeySet[E]) Copy() KeySet[E] {
	return NewKeySet(map[E]struct{}(s))
}

// String shows the contents of the set sorted by their %v representation, so
// that output is stable across runs for use in diagnostics and tests.
func (s KeySet[E]) String() string {
	convs := make([]string, 0, len(s))
	for k := range s {
		convs = append(convs, fmt.Sprintf("%v", k))
	}
	sort.Strings(convs)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(convs, ", "))
	sb.WriteRune('}')
	return sb.String()
}
