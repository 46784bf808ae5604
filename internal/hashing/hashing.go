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

// Package hashing holds the bit-mixing and table-sizing helpers shared by
// the open-addressed collection packages.
package hashing

import "math/bits"

// LoadFactor bounds how full an open-addressed table may become, which in
// turn bounds the expected probe length.
const LoadFactor = 0.7

// Smear mixes the high bits of h into the low bits so that hash codes
// differing only above a table's index mask still separate well. Table build
// and lookup must apply the same mix.
func Smear(h uint32) uint32 {
	return h ^ (h >> 16)
}

// TableSize returns the capacity of an open-addressed table holding up to n
// entries: the smallest power of two that keeps the table at or below
// LoadFactor. The result always exceeds n, so a probe sequence is guaranteed
// to reach an empty slot.
func TableSize(n int) int {
	if n < 0 {
		panic("hashing: negative table size request")
	}
	want := int(float64(n)/LoadFactor) + 1
	if want < 2 {
		want = 2
	}
	return 1 << bits.Len(uint(want-1))
}
