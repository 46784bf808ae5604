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

// Package frozenlist provides an immutable, indexable view over a fixed
// sequence of elements. It is the positional companion to frozenset: a set
// converts into a list through bulk copy, after which the list answers
// index lookups the set does not offer.
package frozenlist

import (
	"fmt"
	"iter"

	"github.com/frostlib/gokit/collection/frozenset"
)

// List is an immutable ordered sequence. The zero value is an empty list.
// Lists are values: copying one shares the backing array safely because
// neither copy can mutate it.
type List[E any] struct {
	elements []E
}

// Of builds a list holding the given elements. The input slice is copied;
// later changes to it do not show through.
func Of[E any](elems ...E) List[E] {
	if len(elems) == 0 {
		return List[E]{}
	}
	out := make([]E, len(elems))
	copy(out, elems)
	return List[E]{elements: out}
}

// FromSet builds a list of the set's elements in the set's iteration order.
func FromSet[E any](s *frozenset.Set[E]) List[E] {
	if s.Len() == 0 {
		return List[E]{}
	}
	out := make([]E, s.Len())
	s.CopyInto(out, 0)
	return List[E]{elements: out}
}

// Get returns the element at index i. Like slice indexing, it panics when i
// is out of range.
func (l List[E]) Get(i int) E {
	if i < 0 || i >= len(l.elements) {
		panic(fmt.Sprintf("frozenlist: index %d out of range for length %d", i, len(l.elements)))
	}
	return l.elements[i]
}

// Len returns the number of elements.
func (l List[E]) Len() int {
	return len(l.elements)
}

// Range calls f sequentially for each element in order. If f returns false,
// range stops the iteration.
func (l List[E]) Range(f func(v E) bool) {
	for _, e := range l.elements {
		if !f(e) {
			break
		}
	}
}

// All returns a restartable iterator over the elements in order.
func (l List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range l.elements {
			if !yield(e) {
				return
			}
		}
	}
}

// Values returns the elements as a fresh slice.
func (l List[E]) Values() []E {
	if len(l.elements) == 0 {
		return nil
	}
	out := make([]E, len(l.elements))
	copy(out, l.elements)
	return out
}
