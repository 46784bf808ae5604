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

package frozenset

import (
	"fmt"

	"github.com/frostlib/gokit/internal/hashing"
)

// Builder accumulates elements for a Set when they are not all at hand up
// front. Elements are deduplicated as they arrive; first occurrence decides
// order. A Builder is not safe for concurrent use. It stays usable after
// Build, so one builder can produce a chain of progressively larger sets.
type Builder[E any] struct {
	hasher   Hasher[E]
	elements []E
	table    []int32
	mask     uint32
	hash     uint32
	limit    int // distinct count that forces the next regrow
}

// NewBuilder returns a Builder using the default hasher for comparable
// types. sizeHint is the expected number of elements; it only pre-sizes.
func NewBuilder[E comparable](sizeHint int) *Builder[E] {
	return NewBuilderWithHasher[E](HasherFor[E](), sizeHint)
}

// NewBuilderWithHasher returns a Builder using the supplied hasher, which
// must be non-nil.
func NewBuilderWithHasher[E any](hasher Hasher[E], sizeHint int) *Builder[E] {
	if hasher == nil {
		panic("frozenset: nil hasher")
	}
	if sizeHint < 0 {
		sizeHint = 0
	}
	b := &Builder[E]{
		hasher:   hasher,
		elements: make([]E, 0, sizeHint),
	}
	b.regrow(hashing.TableSize(sizeHint))
	return b
}

// Add records the given candidates, skipping any already present. A nil
// candidate fails with ErrNilElement and leaves the builder unchanged.
func (b *Builder[E]) Add(elems ...E) error {
	for i, e := range elems {
		if isNilElement(e) {
			return fmt.Errorf("frozenset: element %d: %w", i, ErrNilElement)
		}
	}
	for _, e := range elems {
		b.add(e)
	}
	return nil
}

func (b *Builder[E]) add(e E) {
	hc := b.hasher.Hash(e)
	for i := hashing.Smear(hc) & b.mask; ; i = (i + 1) & b.mask {
		idx := b.table[i]
		if idx == emptySlot {
			b.table[i] = int32(len(b.elements))
			b.elements = append(b.elements, e)
			b.hash += hc
			break
		}
		if b.hasher.Equal(b.elements[idx], e) {
			return
		}
	}
	if len(b.elements) > b.limit {
		// Out of headroom: restart with a table twice as large, rehashed
		// from the canonical array. Deterministic, unlike in-place schemes.
		b.regrow(len(b.table) * 2)
	}
}

// regrow replaces the index table with one of the given power-of-two size
// and replays the canonical array into it.
func (b *Builder[E]) regrow(size int) {
	b.table = rehash(b.hasher, b.elements, size)
	b.mask = uint32(size - 1)
	b.limit = int(float64(size) * hashing.LoadFactor)
}

// Len returns the number of distinct elements added so far.
func (b *Builder[E]) Len() int {
	return len(b.elements)
}

// Build produces an immutable Set of everything added so far. The set owns
// fresh storage; further Add calls do not affect it.
func (b *Builder[E]) Build() *Set[E] {
	switch len(b.elements) {
	case 0:
		return &Set[E]{hasher: b.hasher}
	case 1:
		return &Set[E]{
			hasher:   b.hasher,
			elements: []E{b.elements[0]},
			hash:     b.hash,
		}
	}
	elements := make([]E, len(b.elements))
	copy(elements, b.elements)
	size := hashing.TableSize(len(elements))
	return &Set[E]{
		hasher:   b.hasher,
		elements: elements,
		table:    rehash(b.hasher, elements, size),
		mask:     uint32(size - 1),
		hash:     b.hash,
	}
}
