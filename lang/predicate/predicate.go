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

// Package predicate provides boolean-valued functions of one argument and
// combinators over them.
package predicate

import "github.com/frostlib/gokit/collection/frozenset"

// Predicate reports whether a value satisfies some condition.
type Predicate[T any] func(v T) bool

// AlwaysTrue returns a predicate satisfied by every value.
func AlwaysTrue[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// AlwaysFalse returns a predicate satisfied by no value.
func AlwaysFalse[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// And is satisfied when every component is, evaluated in order and
// short-circuited on the first false. With no components it is always
// satisfied. The component slice is copied, so appending to the original
// afterwards does not change the returned predicate.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	ps = clone(ps)
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or is satisfied when any component is, evaluated in order and
// short-circuited on the first true. With no components it is never
// satisfied. The component slice is copied.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	ps = clone(ps)
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// EqualTo is satisfied by values equal to target under the given hasher's
// equality.
func EqualTo[T any](hasher frozenset.Hasher[T], target T) Predicate[T] {
	return func(v T) bool { return hasher.Equal(target, v) }
}

// In is satisfied by members of s. A nil set admits nothing.
func In[E any](s *frozenset.Set[E]) Predicate[E] {
	if s == nil {
		return AlwaysFalse[E]()
	}
	return s.Contains
}

func clone[T any](ps []Predicate[T]) []Predicate[T] {
	out := make([]Predicate[T], len(ps))
	copy(out, ps)
	return out
}
