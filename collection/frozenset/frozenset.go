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

// Package frozenset provides an immutable set built once from a sequence of
// candidate elements and queried many times. Elements are deduplicated into
// a canonical array that preserves first-seen order; membership is answered
// by a separate open-addressed hash table sized as a power of two. Nothing
// is ever mutated after construction, so a set may be shared freely across
// goroutines without synchronization.
package frozenset

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/frostlib/gokit/internal/hashing"
)

// ErrNilElement is returned when a candidate element is nil. Sets cannot
// hold nil elements.
var ErrNilElement = errors.New("frozenset: nil element")

// emptySlot marks an unoccupied table slot.
const emptySlot = -1

// Set is an immutable set of distinct, non-nil elements.
//
// elements is the single source of truth for Len, iteration and bulk copy;
// it holds the distinct elements in first-seen order. table holds indices
// into elements at hashed positions (plus emptySlot markers) and is read
// only by membership tests; its length is a power of two and always exceeds
// len(elements), so a probe sequence is guaranteed to terminate at an empty
// slot. Sets of zero or one element carry no table at all.
type Set[E any] struct {
	hasher   Hasher[E]
	elements []E
	table    []int32
	mask     uint32 // len(table)-1; 'and' with a smeared hash to get a slot
	hash     uint32 // sum of element hash codes, fixed at construction
}

// New builds a set from elems using the default hasher for comparable
// types. Duplicates are dropped; the first occurrence decides iteration
// order. A nil element makes construction fail with ErrNilElement.
func New[E comparable](elems ...E) (*Set[E], error) {
	return From[E](HasherFor[E](), elems...)
}

// Of is the literal-construction form of New: it panics on a nil element
// instead of returning an error.
func Of[E comparable](elems ...E) *Set[E] {
	s, err := New(elems...)
	if err != nil {
		panic(err)
	}
	return s
}

// From builds a set from elems using the supplied hasher. The hasher must
// be non-nil; it is retained and used for every subsequent membership test.
func From[E any](hasher Hasher[E], elems ...E) (*Set[E], error) {
	if hasher == nil {
		panic("frozenset: nil hasher")
	}
	for i, e := range elems {
		if isNilElement(e) {
			return nil, fmt.Errorf("frozenset: element %d: %w", i, ErrNilElement)
		}
	}
	return build(hasher, elems), nil
}

// build deduplicates elems into a fresh set. All elements have already been
// checked non-nil. The table is sized from the raw candidate count, which
// can only overestimate the distinct count, so a single pass always
// suffices; if duplicates made the estimate too generous the table is
// rebuilt at the tight size before the set is returned.
func build[E any](hasher Hasher[E], elems []E) *Set[E] {
	if len(elems) == 0 {
		return &Set[E]{hasher: hasher}
	}

	size := hashing.TableSize(len(elems))
	mask := uint32(size - 1)
	table := newTable(size)
	distinct := make([]E, 0, len(elems))
	var sum uint32

	for _, e := range elems {
		hc := hasher.Hash(e)
		for i := hashing.Smear(hc) & mask; ; i = (i + 1) & mask {
			idx := table[i]
			if idx == emptySlot {
				table[i] = int32(len(distinct))
				distinct = append(distinct, e)
				sum += hc
				break
			}
			if hasher.Equal(distinct[idx], e) {
				// Duplicate; first occurrence already placed.
				break
			}
		}
	}

	if len(distinct) == 1 {
		return &Set[E]{hasher: hasher, elements: distinct[:1:1], hash: sum}
	}
	if fit := hashing.TableSize(len(distinct)); fit < size {
		table = rehash(hasher, distinct, fit)
		mask = uint32(fit - 1)
	}
	return &Set[E]{
		hasher:   hasher,
		elements: distinct,
		table:    table,
		mask:     mask,
		hash:     sum,
	}
}

// rehash places the already-distinct elements into a fresh index table of
// the given power-of-two size.
func rehash[E any](hasher Hasher[E], distinct []E, size int) []int32 {
	table := newTable(size)
	mask := uint32(size - 1)
	for n, e := range distinct {
		i := hashing.Smear(hasher.Hash(e)) & mask
		for table[i] != emptySlot {
			i = (i + 1) & mask
		}
		table[i] = int32(n)
	}
	return table
}

func newTable(size int) []int32 {
	table := make([]int32, size)
	for i := range table {
		table[i] = emptySlot
	}
	return table
}

// Contains reports whether v is in the set. It is total: a nil v, or any
// value absent from the set, yields false. It never panics and is safe to
// call from any number of goroutines.
func (s *Set[E]) Contains(v E) bool {
	if len(s.elements) == 0 || isNilElement(v) {
		return false
	}
	if s.table == nil {
		return s.hasher.Equal(s.elements[0], v)
	}
	for i := hashing.Smear(s.hasher.Hash(v)) & s.mask; ; i = (i + 1) & s.mask {
		idx := s.table[i]
		if idx == emptySlot {
			return false
		}
		if s.hasher.Equal(s.elements[idx], v) {
			return true
		}
	}
}

// ContainsAny is the untyped form of Contains: a value of a foreign type,
// like a nil value, simply yields false.
func (s *Set[E]) ContainsAny(v any) bool {
	if v == nil {
		return false
	}
	e, ok := v.(E)
	if !ok {
		return false
	}
	return s.Contains(e)
}

// Len returns the number of distinct elements.
func (s *Set[E]) Len() int {
	return len(s.elements)
}

// Hash returns the set's hash code: the 32-bit wrapping sum of its element
// hash codes. Sets holding the same elements hash identically regardless of
// construction order.
func (s *Set[E]) Hash() uint32 {
	return s.hash
}

// Equal reports whether s and o hold exactly the same distinct elements,
// irrespective of iteration order. Both sets must have been built with
// equivalent hashers.
func (s *Set[E]) Equal(o *Set[E]) bool {
	if s == o {
		return true
	}
	if o == nil {
		return false
	}
	if len(s.elements) != len(o.elements) || s.hash != o.hash {
		return false
	}
	for _, e := range o.elements {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// Range calls f sequentially for each element in first-seen order. If f
// returns false, range stops the iteration.
func (s *Set[E]) Range(f func(v E) bool) {
	for _, e := range s.elements {
		if !f(e) {
			break
		}
	}
}

// All returns an iterator over the elements in first-seen order. The
// sequence is restartable: ranging over it twice yields the same order.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.elements {
			if !yield(e) {
				return
			}
		}
	}
}

// Values returns the elements as a fresh slice in first-seen order. The
// backing array is never shared with callers.
func (s *Set[E]) Values() []E {
	if len(s.elements) == 0 {
		return nil
	}
	out := make([]E, len(s.elements))
	copy(out, s.elements)
	return out
}

// CopyInto writes the elements into dst starting at offset and returns the
// offset just past the last element written. It panics if dst is too short,
// matching slice-indexing semantics.
func (s *Set[E]) CopyInto(dst []E, offset int) int {
	if offset < 0 || offset+len(s.elements) > len(dst) {
		panic(fmt.Sprintf("frozenset: CopyInto bounds [%d:%d) out of range for destination of length %d",
			offset, offset+len(s.elements), len(dst)))
	}
	copy(dst[offset:], s.elements)
	return offset + len(s.elements)
}

// String renders the elements in iteration order, for debugging.
func (s *Set[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range s.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte('}')
	return sb.String()
}
