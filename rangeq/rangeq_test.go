// SPDX-License-Identifier: MIT

package rangeq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/rangeq"
)

var book = []int64{1, 3, 4, 8, 6, 1, 4, 2}

func naiveSum(xs []int64, a, b int) int64 {
	var s int64
	for _, x := range xs[a : b+1] {
		s += x
	}

	return s
}

func TestPrefixSums(t *testing.T) {
	ps := rangeq.NewPrefixSums(book)
	s, err := ps.Sum(3, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(19), s)

	for a := range book {
		for b := a; b < len(book); b++ {
			s, err := ps.Sum(a, b)
			require.NoError(t, err)
			require.Equal(t, naiveSum(book, a, b), s)
		}
	}

	_, err = ps.Sum(4, 2)
	assert.ErrorIs(t, err, rangeq.ErrEmptyRange)
	_, err = ps.Sum(0, 8)
	assert.ErrorIs(t, err, rangeq.ErrIndexOutOfRange)
}

func TestPrefixSums2D(t *testing.T) {
	grid := [][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	ps, err := rangeq.NewPrefixSums2D(grid)
	require.NoError(t, err)

	s, err := ps.Sum(1, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(28), s)

	s, err = ps.Sum(0, 0, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(45), s)

	_, err = ps.Sum(0, 0, 3, 0)
	assert.ErrorIs(t, err, rangeq.ErrIndexOutOfRange)

	_, err = rangeq.NewPrefixSums2D([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, rangeq.ErrRagged)
}

func TestSparseTable(t *testing.T) {
	st := rangeq.NewSparseTable(book, func(a, b int64) int64 { return min(a, b) })
	m, err := st.Query(1, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m)

	m, err = st.Query(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), m)

	for a := range book {
		for b := a; b < len(book); b++ {
			want := book[a]
			for _, x := range book[a : b+1] {
				want = min(want, x)
			}
			got, err := st.Query(a, b)
			require.NoError(t, err)
			require.Equal(t, want, got, "[%d,%d]", a, b)
		}
	}

	_, err = st.Query(-1, 2)
	assert.ErrorIs(t, err, rangeq.ErrIndexOutOfRange)

	empty := rangeq.NewSparseTable([]int{}, func(a, b int) int { return max(a, b) })
	assert.Zero(t, empty.Len())
}

func TestFenwick(t *testing.T) {
	f := rangeq.NewFenwickFrom(book)
	s, err := f.RangeSum(3, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(19), s)

	require.NoError(t, f.Add(3, -8))
	s, err = f.RangeSum(3, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(11), s)

	p, err := f.PrefixSum(-1)
	require.NoError(t, err)
	assert.Zero(t, p)

	assert.ErrorIs(t, f.Add(8, 1), rangeq.ErrIndexOutOfRange)
	_, err = f.PrefixSum(8)
	assert.ErrorIs(t, err, rangeq.ErrIndexOutOfRange)
}

func TestFenwick_RandomAgainstSlice(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	xs := make([]int64, 40)
	f, err := rangeq.NewFenwick(len(xs))
	require.NoError(t, err)
	for step := 0; step < 500; step++ {
		k, x := r.Intn(len(xs)), r.Int63n(21)-10
		xs[k] += x
		require.NoError(t, f.Add(k, x))

		a := r.Intn(len(xs))
		b := a + r.Intn(len(xs)-a)
		got, err := f.RangeSum(a, b)
		require.NoError(t, err)
		require.Equal(t, naiveSum(xs, a, b), got)
	}
}

func TestRangeFenwick(t *testing.T) {
	rf, err := rangeq.NewRangeFenwick(8)
	require.NoError(t, err)
	require.NoError(t, rf.AddRange(1, 4, 5))
	require.NoError(t, rf.AddRange(3, 7, 2))

	want := []int64{0, 5, 5, 7, 7, 2, 2, 2}
	for k, w := range want {
		got, err := rf.Get(k)
		require.NoError(t, err)
		assert.Equal(t, w, got, "index %d", k)
	}

	assert.ErrorIs(t, rf.AddRange(5, 8, 1), rangeq.ErrIndexOutOfRange)
	_, err = rf.Get(8)
	assert.ErrorIs(t, err, rangeq.ErrIndexOutOfRange)
}

func TestFenwick_BadLength(t *testing.T) {
	for _, n := range []int{-5, -1, rangeq.MaxLen + 1, 1 << 62} {
		_, err := rangeq.NewFenwick(n)
		assert.ErrorIs(t, err, rangeq.ErrBadLength, "n=%d", n)
		_, err = rangeq.NewRangeFenwick(n)
		assert.ErrorIs(t, err, rangeq.ErrBadLength, "n=%d", n)
	}

	f, err := rangeq.NewFenwick(0)
	require.NoError(t, err)
	_, err = f.PrefixSum(0)
	assert.ErrorIs(t, err, rangeq.ErrIndexOutOfRange)
}

func TestSegmentTree_Sum(t *testing.T) {
	st := rangeq.NewSegmentTree(book, rangeq.SumMonoid)
	s, err := st.Query(2, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(25), s)

	require.NoError(t, st.Set(5, 10))
	s, err = st.Query(2, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(34), s)

	v, err := st.Get(5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)
}

func TestSegmentTree_MinMax(t *testing.T) {
	lo := rangeq.NewSegmentTree(book, rangeq.MinMonoid)
	hi := rangeq.NewSegmentTree(book, rangeq.MaxMonoid)
	m, err := lo.Query(4, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m)
	m, err = hi.Query(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), m)
}

// TestSegmentTree_NonCommutative uses string concatenation on a length that
// is not a power of two to check that combine order is preserved.
func TestSegmentTree_NonCommutative(t *testing.T) {
	concat := rangeq.Monoid[string]{Identity: "", Combine: func(a, b string) string { return a + b }}
	letters := []string{"a", "b", "c", "d", "e", "f", "g"}
	st := rangeq.NewSegmentTree(letters, concat)

	for a := range letters {
		for b := a; b < len(letters); b++ {
			want := ""
			for _, s := range letters[a : b+1] {
				want += s
			}
			got, err := st.Query(a, b)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}

	_, err := st.Query(3, 2)
	assert.ErrorIs(t, err, rangeq.ErrEmptyRange)
	assert.ErrorIs(t, st.Set(7, "x"), rangeq.ErrIndexOutOfRange)
}
