// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package set implements a minimal generic set.
//
// It is not safe for concurrent use.
package set

import (
	"cmp"
	"slices"
)

// Set is a set of ordered values. make(Set[T]) works too.
type Set[T cmp.Ordered] map[T]struct{}

// Of returns a set containing vals.
func Of[T cmp.Ordered](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	s.Add(vals...)
	return s
}

// Has reports whether s contains v.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Add adds vals to s.
func (s Set[T]) Add(vals ...T) {
	for _, v := range vals {
		s[v] = struct{}{}
	}
}

// Len returns the number of values in s.
func (s Set[T]) Len() int { return len(s) }

// Sorted returns the values of s in ascending order.
func (s Set[T]) Sorted() []T {
	vals := make([]T, 0, len(s))
	for v := range s {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}
