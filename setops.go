// Copyright 2023 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

// Whole-set algebra.  Every operation here is a single pass over the
// backing words; none of them look at individual elements.  Each binary
// operation comes in two flavors with identical logical results: a
// value-producing one that allocates a fresh Set and leaves both operands
// untouched, and an in-place one (the *With methods) that mutates the
// receiver.
//
// Result storage lengths follow from which words can carry set bits:
// union and symmetric difference span the longer operand, intersection
// only the shorter (AND against an implicit zero word is zero), and
// difference keeps the receiver's length.

// Union returns a new set containing the elements present in s, other, or
// both.
func (s *Set) Union(other *Set) *Set {
	out := s.Clone()
	out.UnionWith(other)
	return out
}

// UnionWith adds every element of other to s.
func (s *Set) UnionWith(other *Set) {
	if len(other.words) > len(s.words) {
		s.grow(len(other.words) - 1)
	}
	for i, w := range other.words {
		s.words[i] |= w
	}
}

// Intersect returns a new set containing the elements present in both s
// and other.
func (s *Set) Intersect(other *Set) *Set {
	out := s.Clone()
	out.IntersectWith(other)
	return out
}

// IntersectWith removes from s every element not present in other.
func (s *Set) IntersectWith(other *Set) {
	if len(other.words) < len(s.words) {
		s.words = s.words[:len(other.words)]
	}
	for i := range s.words {
		s.words[i] &= other.words[i]
	}
}

// Difference returns a new set containing the elements of s that are not
// in other.
func (s *Set) Difference(other *Set) *Set {
	out := s.Clone()
	out.DifferenceWith(other)
	return out
}

// DifferenceWith removes every element of other from s.
func (s *Set) DifferenceWith(other *Set) {
	n := len(s.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		s.words[i] &^= other.words[i]
	}
}

// SymmetricDifference returns a new set containing the elements present in
// exactly one of s and other.
func (s *Set) SymmetricDifference(other *Set) *Set {
	out := s.Clone()
	out.SymmetricDifferenceWith(other)
	return out
}

// SymmetricDifferenceWith toggles membership in s for every element of
// other.
func (s *Set) SymmetricDifferenceWith(other *Set) {
	if len(other.words) > len(s.words) {
		s.grow(len(other.words) - 1)
	}
	for i, w := range other.words {
		s.words[i] ^= w
	}
}

// Equal reports whether s and other contain exactly the same elements.
// Trailing zero words don't count: sets with different storage lengths but
// the same set bits are equal.
func (s *Set) Equal(other *Set) bool {
	a, b := s.words, other.words
	if len(a) > len(b) {
		a, b = b, a
	}
	for i, w := range a {
		if w != b[i] {
			return false
		}
	}
	for _, w := range b[len(a):] {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every element of s is also in other.  It runs
// in time proportional to the word count of s, short-circuiting on the
// first word with a bit not covered by other.
func (s *Set) IsSubsetOf(other *Set) bool {
	for i, w := range s.words {
		if i >= len(other.words) {
			if w != 0 {
				return false
			}
			continue
		}
		if w&^other.words[i] != 0 {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every element of other is also in s.
func (s *Set) IsSupersetOf(other *Set) bool {
	return other.IsSubsetOf(s)
}

// IsDisjoint reports whether s and other have no elements in common.
func (s *Set) IsDisjoint(other *Set) bool {
	n := len(s.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		if s.words[i]&other.words[i] != 0 {
			return false
		}
	}
	return true
}
