package parity

import (
	"fmt"
	"slices"
	"strings"
)

// Key is an identity key that can be rendered in a report.
type Key interface {
	comparable
	fmt.Stringer
}

type Set[K comparable] map[K]struct{}

func (s Set[K]) Add(k K) {
	s[k] = struct{}{}
}

func (s Set[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

// Intersect returns the keys present in both s and other.
func (s Set[K]) Intersect(other Set[K]) Set[K] {
	out := Set[K]{}
	for k := range s {
		if other.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Minus returns the keys of s that are absent from other.
func (s Set[K]) Minus(other Set[K]) Set[K] {
	out := Set[K]{}
	for k := range s {
		if !other.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Sorted returns the keys ordered by their rendered form.
func Sorted[K Key](s Set[K]) []K {
	keys := make([]K, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}
