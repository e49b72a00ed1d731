// Copyright 2023 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"math/bits"
)

// Iterator produces the elements of a Set in ascending order.  It walks
// the backing words low to high and peels set bits off with a bit-scan, so
// advancing costs O(1) per element plus O(1) per empty word skipped
// instead of a probe per candidate integer.
//
// An Iterator reads the Set's storage directly: mutating the set while
// iterating gives unspecified results.  Abandoning an iterator early is
// fine; it holds no resources.
type Iterator struct {
	words []uint64
	index int
	cur   uint64
}

// Iter returns a new Iterator positioned before the smallest element.
// Each call returns an independent iterator, so iteration can be restarted
// at any time.
func (s *Set) Iter() *Iterator {
	it := &Iterator{words: s.words}
	if len(s.words) > 0 {
		it.cur = s.words[0]
	}
	return it
}

// Next returns the next element in ascending order, or ok=false when the
// set is exhausted.
func (it *Iterator) Next() (x uint, ok bool) {
	for {
		if it.cur != 0 {
			bit := bits.TrailingZeros64(it.cur)
			it.cur &^= 1 << bit
			return uint(it.index)*wordBits + uint(bit), true
		}
		it.index++
		if it.index >= len(it.words) {
			return 0, false
		}
		it.cur = it.words[it.index]
	}
}

// AppendTo appends the set's elements to dst in ascending order and
// returns the extended slice.
func (s *Set) AppendTo(dst []uint) []uint {
	it := s.Iter()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		dst = append(dst, x)
	}
	return dst
}
