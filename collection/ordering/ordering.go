// Copyright 2025 The frostlib Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ordering provides composable comparators. A frozenset iterates in
// first-seen order; when a caller needs a deterministic order independent
// of insertion history, an Ordering supplies it.
package ordering

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/frostlib/gokit/collection/frozenset"
)

// Ordering compares two values: negative when a sorts before b, zero when
// they sort equally, positive when a sorts after b.
type Ordering[T any] func(a, b T) int

// Natural orders values by <.
func Natural[T constraints.Ordered]() Ordering[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// By orders values of type F by applying ord to the result of a key
// function on them.
func By[F, T any](key func(F) T, ord Ordering[T]) Ordering[F] {
	return func(a, b F) int {
		return ord(key(a), key(b))
	}
}

// Reverse returns the opposite of o.
func (o Ordering[T]) Reverse() Ordering[T] {
	return func(a, b T) int {
		return o(b, a)
	}
}

// Then breaks ties under o with next.
func (o Ordering[T]) Then(next Ordering[T]) Ordering[T] {
	return func(a, b T) int {
		if c := o(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}

// Min returns whichever of a and b sorts first; a on a tie.
func (o Ordering[T]) Min(a, b T) T {
	if o(b, a) < 0 {
		return b
	}
	return a
}

// Max returns whichever of a and b sorts last; a on a tie.
func (o Ordering[T]) Max(a, b T) T {
	if o(b, a) > 0 {
		return b
	}
	return a
}

// Sort sorts s in place under o, keeping equal elements in their original
// relative order.
func (o Ordering[T]) Sort(s []T) {
	slices.SortStableFunc(s, o)
}

// SortedValues returns the set's elements sorted under o rather than in
// insertion order.
func SortedValues[E any](s *frozenset.Set[E], o Ordering[E]) []E {
	out := s.Values()
	o.Sort(out)
	return out
}
