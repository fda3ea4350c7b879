package waveplot

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Set is a set of ordered values.
type Set[T cmp.Ordered] map[T]struct{}

// FloatSet holds the levels of discrete fields.
type FloatSet = Set[float64]

func NewFloatSet() FloatSet { return make(FloatSet) }

func (s Set[T]) String() string {
	parts := make([]string, 0, len(s))
	for _, x := range s.Elements() {
		parts = append(parts, fmt.Sprint(x))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Add adds x to s.
func (s Set[T]) Add(x T) { s[x] = struct{}{} }

// Contains reports membership of x in s.
func (s Set[T]) Contains(x T) bool {
	_, ok := s[x]
	return ok
}

// Elements returns the sorted elements of s.
func (s Set[T]) Elements() []T {
	elems := make([]T, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	slices.Sort(elems)
	return elems
}
