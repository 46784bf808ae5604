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
	"hash/maphash"
	"reflect"
)

// Hasher supplies the hash and equality capabilities an element type must
// provide. Hash must be consistent with Equal: equal elements hash to the
// same code. Implementations must be stateless; the same Hasher value is
// shared by every operation on a set for the set's whole lifetime.
type Hasher[E any] interface {
	Hash(v E) uint32
	Equal(a, b E) bool
}

// comparableHasher hashes any comparable type through the runtime's native
// hash, folded to 32 bits.
type comparableHasher[E comparable] struct{}

var hashSeed = maphash.MakeSeed()

func (comparableHasher[E]) Hash(v E) uint32 {
	h := maphash.Comparable(hashSeed, v)
	return uint32(h ^ h>>32)
}

func (comparableHasher[E]) Equal(a, b E) bool {
	return a == b
}

// HasherFor returns the default Hasher for a comparable element type. Hash
// codes are stable within a process, not across processes.
func HasherFor[E comparable]() Hasher[E] {
	return comparableHasher[E]{}
}

// isNilElement reports whether v is nil or wraps a nil pointer-like value.
// Such values are rejected at construction and never match on lookup.
func isNilElement(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
