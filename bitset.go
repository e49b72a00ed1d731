// Copyright 2023 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitset implements a dynamically growable set of non-negative
// integers backed by a vector of 64-bit words.  Membership operations are
// constant time (amortized, in the case of Insert), and whole-set algebra
// (union, intersection, difference, symmetric difference, subset tests)
// runs word-parallel over the backing storage rather than element by
// element.  It is a good fit for dense, bounded-range integer keys where a
// bitmap beats a hash-based set.
//
// Sets are not safe for concurrent mutation; callers that share a Set
// across goroutines need to provide their own synchronization.
package bitset

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/bitset/internal/unsafeslice"
	"github.com/bpowers/bitset/internal/zero"
)

const wordBits = 64

// Set is a bit vector indexed by non-negative integers: bit x of the
// backing words records whether x is a member.  The zero value is an empty
// set ready for use.
//
// Storage is never shrunk implicitly: removing an element may leave
// trailing all-zero words behind.  All observable operations (Equal, Len,
// Iter, IsSubsetOf, Hash) are insensitive to trailing zero words, and
// ShrinkToFit trims them explicitly if memory matters.
type Set struct {
	words []uint64
}

// New returns a new empty Set with no storage allocated.
func New() *Set {
	return &Set{}
}

// WithCapacity returns a new empty Set with storage preallocated so that
// elements below nbits can be inserted without further allocation.
func WithCapacity(nbits int) *Set {
	if nbits <= 0 {
		return &Set{}
	}
	return &Set{
		words: make([]uint64, 0, numWords(uint(nbits))),
	}
}

// Of returns a new Set containing exactly the given values.  Duplicates
// are fine and order doesn't matter.
func Of(values ...uint) *Set {
	s := New()
	s.Extend(values...)
	return s
}

// Collect returns a new Set containing every value in the slice.
func Collect(values []uint) *Set {
	return Of(values...)
}

// numWords returns the number of 64-bit words needed to address nbits bits.
func numWords(nbits uint) int {
	return int((nbits + wordBits - 1) / wordBits)
}

func getOffsets(x uint) (wordOff int, bitOff uint) {
	wordOff = int(x / wordBits)
	bitOff = x % wordBits
	return
}

// grow extends the backing storage with zero words until wordOff is
// addressable.  Appending one word at a time keeps growth amortized O(1)
// per word: append expands capacity geometrically.
func (s *Set) grow(wordOff int) {
	for len(s.words) <= wordOff {
		s.words = append(s.words, 0)
	}
}

// Insert adds x to the set, growing storage if needed, and reports whether
// x was newly inserted (false if it was already present).
func (s *Set) Insert(x uint) bool {
	wordOff, bitOff := getOffsets(x)
	s.grow(wordOff)
	if s.words[wordOff]&(1<<bitOff) != 0 {
		return false
	}
	s.words[wordOff] |= 1 << bitOff
	return true
}

// Remove deletes x from the set and reports whether it was present.
// Removing an element beyond the set's capacity is a safe no-op.
func (s *Set) Remove(x uint) bool {
	wordOff, bitOff := getOffsets(x)
	if wordOff >= len(s.words) || s.words[wordOff]&(1<<bitOff) == 0 {
		return false
	}
	s.words[wordOff] &^= 1 << bitOff
	return true
}

// Contains reports whether x is in the set.
func (s *Set) Contains(x uint) bool {
	wordOff, bitOff := getOffsets(x)
	if wordOff >= len(s.words) {
		return false
	}
	return s.words[wordOff]&(1<<bitOff) != 0
}

// Extend inserts every value into the set.
func (s *Set) Extend(values ...uint) {
	for _, x := range values {
		s.Insert(x)
	}
}

// Len returns the number of elements in the set, counted word-parallel
// with popcount.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set contains no elements.
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Capacity returns the number of bits addressable without growing.
func (s *Set) Capacity() int {
	return len(s.words) * wordBits
}

// Clear removes all elements, keeping the allocated storage for reuse.
func (s *Set) Clear() {
	zero.U64(s.words)
}

// ShrinkToFit drops trailing all-zero words and reallocates the backing
// storage to exactly fit what remains.  The logical value of the set is
// unchanged.
func (s *Set) ShrinkToFit() {
	n := len(s.words)
	for n > 0 && s.words[n-1] == 0 {
		n--
	}
	if n == 0 {
		s.words = nil
		return
	}
	if n == len(s.words) && n == cap(s.words) {
		return
	}
	words := make([]uint64, n)
	copy(words, s.words)
	s.words = words
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	out := &Set{}
	if len(s.words) > 0 {
		out.words = make([]uint64, len(s.words))
		copy(out.words, s.words)
	}
	return out
}

// trimmed returns the backing words without trailing zero words.  The
// result aliases s.words and must only be read.
func (s *Set) trimmed() []uint64 {
	words := s.words
	for len(words) > 0 && words[len(words)-1] == 0 {
		words = words[:len(words)-1]
	}
	return words
}

// Hash returns a 64-bit content hash of the set.  Sets that compare Equal
// hash identically, including sets that differ only in trailing zero words.
func (s *Set) Hash() uint64 {
	return farm.Hash64(unsafeslice.U64ToBytes(s.trimmed()))
}

// String renders the set's elements in ascending order, e.g. "{0, 7, 14}".
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	it := s.Iter()
	first := true
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}
