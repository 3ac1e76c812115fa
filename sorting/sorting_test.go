// SPDX-License-Identifier: MIT

package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/sorting"
)

func naiveInversions(xs []int) int64 {
	var inv int64
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] > xs[j] {
				inv++
			}
		}
	}

	return inv
}

func randomInts(r *rand.Rand, n, limit int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = r.Intn(limit)
	}

	return xs
}

func TestBubbleSort_SwapsEqualInversions(t *testing.T) {
	xs := []int{1, 3, 8, 2, 9, 2, 5, 6}
	inv := sorting.Inversions(xs)
	assert.Equal(t, int64(9), inv)
	assert.Equal(t, []int{1, 3, 8, 2, 9, 2, 5, 6}, xs, "Inversions must not modify input")

	swaps := sorting.BubbleSort(xs)
	assert.Equal(t, inv, swaps)
	assert.Equal(t, []int{1, 2, 2, 3, 5, 6, 8, 9}, xs)
}

func TestMergeSort_Random(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		xs := randomInts(r, r.Intn(40), 15)
		want := append([]int{}, xs...)
		sort.Ints(want)
		inv := naiveInversions(xs)

		require.Equal(t, inv, sorting.Inversions(xs))
		sorting.MergeSort(xs)
		require.Equal(t, want, xs)
	}
}

func TestCountingSort(t *testing.T) {
	got, err := sorting.CountingSort([]int{1, 3, 6, 9, 9, 3, 5, 9}, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 3, 5, 6, 9, 9, 9}, got)

	_, err = sorting.CountingSort([]int{1, 10}, 9)
	assert.ErrorIs(t, err, sorting.ErrValueOutOfRange)
	_, err = sorting.CountingSort([]int{-1}, 9)
	assert.ErrorIs(t, err, sorting.ErrValueOutOfRange)

	got, err = sorting.CountingSort(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = sorting.CountingSort([]int{1}, 1<<62)
	assert.ErrorIs(t, err, sorting.ErrTooLarge)
}

func TestSearches(t *testing.T) {
	xs := []int{1, 2, 3, 5, 5, 5, 8, 9}

	for _, search := range []func([]int, int) (int, bool){
		sorting.BinarySearch[int],
		sorting.JumpSearch[int],
	} {
		for _, x := range xs {
			k, ok := search(xs, x)
			require.True(t, ok, "x=%d", x)
			require.Equal(t, x, xs[k])
		}
		for _, x := range []int{0, 4, 6, 10} {
			_, ok := search(xs, x)
			require.False(t, ok, "x=%d", x)
		}
		_, ok := search(nil, 1)
		require.False(t, ok)
	}

	k, ok := sorting.JumpSearch(xs, 5)
	require.True(t, ok)
	assert.Equal(t, 5, k, "jump search stops at the last occurrence")

	k, ok = sorting.JumpSearch([]int{4}, 4)
	require.True(t, ok)
	assert.Zero(t, k)
}

func TestBounds(t *testing.T) {
	xs := []int{1, 2, 3, 5, 5, 5, 8, 9}
	assert.Equal(t, 3, sorting.LowerBound(xs, 5))
	assert.Equal(t, 6, sorting.UpperBound(xs, 5))
	assert.Equal(t, 3, sorting.LowerBound(xs, 4))
	assert.Equal(t, 8, sorting.LowerBound(xs, 10))
	assert.Equal(t, 0, sorting.UpperBound(xs, 0))

	lo, hi := sorting.EqualRange(xs, 5)
	assert.Equal(t, 3, hi-lo)
	lo, hi = sorting.EqualRange(xs, 7)
	assert.Equal(t, lo, hi)
}

func TestSmallestTrue(t *testing.T) {
	k, ok, err := sorting.SmallestTrue(0, 100, func(x int) bool { return x*x >= 50 })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, k)

	k, ok, err = sorting.SmallestTrue(3, 9, func(int) bool { return true })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, k)

	_, ok, err = sorting.SmallestTrue(0, 9, func(int) bool { return false })
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = sorting.SmallestTrue(5, 4, func(int) bool { return true })
	assert.ErrorIs(t, err, sorting.ErrBadRange)
}

func TestUnimodalMax(t *testing.T) {
	f := func(x int) int64 { return int64(-(x - 37) * (x - 37)) }
	k, err := sorting.UnimodalMax(0, 100, f)
	require.NoError(t, err)
	assert.Equal(t, 37, k)

	k, err = sorting.UnimodalMax(0, 10, func(x int) int64 { return int64(x) })
	require.NoError(t, err)
	assert.Equal(t, 10, k)

	_, err = sorting.UnimodalMax(1, 0, f)
	assert.ErrorIs(t, err, sorting.ErrBadRange)
}

func TestQuickSelect(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	r := rand.New(rand.NewSource(9))
	for round := 0; round < 30; round++ {
		xs := randomInts(r, 1+r.Intn(30), 10)
		sorted := append([]int(nil), xs...)
		sort.Ints(sorted)
		orig := append([]int(nil), xs...)
		for k := range xs {
			got, err := sorting.QuickSelect(xs, k, rng)
			require.NoError(t, err)
			require.Equal(t, sorted[k], got)
		}
		require.Equal(t, orig, xs)
	}

	_, err := sorting.QuickSelect([]int{1}, 1, rng)
	assert.ErrorIs(t, err, sorting.ErrBadRank)
	_, err = sorting.QuickSelect([]int{1}, 0, nil)
	assert.ErrorIs(t, err, sorting.ErrNilRand)
}
