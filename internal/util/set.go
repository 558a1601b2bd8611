package util

import (
	"fmt"
	"sort"
	"strings"
)

// KeySet is a map[E comparable]bool with set operations added.
type KeySet[E comparable] map[E]bool

func NewKeySet[E comparable](of ...E) KeySet[E] {
	s := KeySet[E]{}
	for _, k := range of {
		s.Add(k)
	}
	return s
}

func (s KeySet[E]) Has(value E) bool {
	_, has := s[value]
	return has
}

func (s KeySet[E]) Add(value E) {
	s[value] = true
}

func (s KeySet[E]) Len() int {
	return len(s)
}

// Difference returns a new KeySet that contains the elements that are in s but
// not in o.
func (s KeySet[E]) Difference(o KeySet[E]) KeySet[E] {
	newSet := NewKeySet[E]()
	for k := range s {
		if !o.Has(k) {
			newSet.Add(k)
		}
	}
	return newSet
}

// StringOrdered shows the contents of the set. Items are guaranteed to be
// alphabetized.
func (s KeySet[E]) StringOrdered() string {
	convs := make([]string, 0, len(s))
	for k := range s {
		convs = append(convs, fmt.Sprintf("%v", k))
	}
	sort.Strings(convs)

	return "{" + strings.Join(convs, ", ") + "}"
}
