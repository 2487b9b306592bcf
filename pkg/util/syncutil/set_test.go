// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

import (
	"cmp"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBasic(t *testing.T) {
	var s Set[int]

	require.Nil(t, asSlice(&s))
	require.False(t, s.Contains(1))
	require.False(t, s.Remove(1))

	require.True(t, s.Add(1))
	require.False(t, s.Add(1))
	require.True(t, s.Add(2))
	require.Equal(t, []int{1, 2}, asSlice(&s))
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(3))

	require.True(t, s.Remove(1))
	require.False(t, s.Remove(1))
	require.False(t, s.Remove(3))
	require.Equal(t, []int{2}, asSlice(&s))
	require.False(t, s.Contains(1))
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(3))
}

func TestSetLen(t *testing.T) {
	var s Set[string]

	require.Equal(t, 0, s.Len())
	s.Add("a")
	s.Add("b")
	s.Add("b")
	require.Equal(t, 2, s.Len())
	s.Remove("a")
	require.Equal(t, 1, s.Len())
	s.Remove("b")
	require.Equal(t, 0, s.Len())
}

func TestSetRangeEarlyExit(t *testing.T) {
	var s Set[int]
	for i := 0; i < 10; i++ {
		s.Add(i)
	}

	var seen int
	s.Range(func(v int) bool {
		seen++
		return seen < 3
	})
	require.Equal(t, 3, seen)
}

// TestSetConcurrent has each goroutine add a disjoint range of values and
// remove half of them again. Run with -race to check the locking.
func TestSetConcurrent(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 100

	var s Set[int]
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				v := g*perGoroutine + i
				s.Add(v)
				if i%2 == 0 {
					s.Remove(v)
				}
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, goroutines*perGoroutine/2, s.Len())
	for v := 0; v < goroutines*perGoroutine; v++ {
		require.Equal(t, v%2 == 1, s.Contains(v))
	}
}

func asSlice[V cmp.Ordered](s *Set[V]) []V {
	var res []V
	s.Range(func(v V) bool {
		res = append(res, v)
		return true
	})
	slices.Sort(res)
	return res
}
