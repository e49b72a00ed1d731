// Copyright 2023 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestIter(t *testing.T) {
	s := Of(37, 0, 14, 7, 0)
	require.Equal(t, []uint{0, 7, 14, 37}, elements(s))
}

func TestIterEmpty(t *testing.T) {
	it := New().Iter()
	_, ok := it.Next()
	require.False(t, ok)

	// a drained iterator stays drained
	_, ok = it.Next()
	require.False(t, ok)
}

func TestIterWordBoundaries(t *testing.T) {
	s := Of(0, 63, 64, 127, 128, 1000)
	require.Equal(t, []uint{0, 63, 64, 127, 128, 1000}, elements(s))
}

func TestIterSkipsZeroWords(t *testing.T) {
	s := Of(3, 100000)
	require.Equal(t, []uint{3, 100000}, elements(s))

	// trailing zero words yield nothing
	s.Remove(100000)
	require.Equal(t, []uint{3}, elements(s))
}

func TestIterRestartable(t *testing.T) {
	s := Of(1, 2, 3)

	first := s.Iter()
	x, ok := first.Next()
	require.True(t, ok)
	require.Equal(t, uint(1), x)

	// a second iterator starts from the beginning, independently
	second := s.Iter()
	y, ok := second.Next()
	require.True(t, ok)
	require.Equal(t, uint(1), y)

	x, ok = first.Next()
	require.True(t, ok)
	require.Equal(t, uint(2), x)
}

func TestIterEarlyStop(t *testing.T) {
	s := Of(10, 20, 30, 40)

	it := s.Iter()
	for i := 0; i < 2; i++ {
		_, ok := it.Next()
		require.True(t, ok)
	}
	// abandoning the iterator must leave the set untouched
	require.Equal(t, []uint{10, 20, 30, 40}, elements(s))
}

func TestLenMatchesIterCount(t *testing.T) {
	rng := rand.New(rand.NewSource(31337))

	for trial := 0; trial < 50; trial++ {
		s, expected := randomSet(rng, 300, 1<<13)

		got := s.AppendTo(nil)
		require.Equal(t, expected, got)
		require.Equal(t, s.Len(), len(got))
		require.True(t, slices.IsSorted(got))
	}
}

func TestAppendTo(t *testing.T) {
	s := Of(2, 4)

	dst := []uint{99}
	dst = s.AppendTo(dst)
	require.Equal(t, []uint{99, 2, 4}, dst)

	require.Empty(t, New().AppendTo(nil))
}
