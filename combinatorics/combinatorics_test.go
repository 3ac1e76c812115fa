// SPDX-License-Identifier: MIT

package combinatorics_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/combinatorics"
)

func TestPascalAndBinomial(t *testing.T) {
	rows, err := combinatorics.Pascal(combinatorics.MaxPascalRow)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 6, 4, 1}, rows[4])

	for n := range rows {
		for k := range rows[n] {
			c, err := combinatorics.Binomial(int64(n), int64(k))
			require.NoError(t, err)
			require.Equal(t, rows[n][k], c, "C(%d,%d)", n, k)
		}
	}

	_, err = combinatorics.Pascal(combinatorics.MaxPascalRow + 1)
	assert.ErrorIs(t, err, combinatorics.ErrOverflow)

	c, err := combinatorics.Binomial(5, 7)
	require.NoError(t, err)
	assert.Zero(t, c)

	// Large n, small k still fits.
	c, err = combinatorics.Binomial(1_000_000, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(166_666_166_667_000_000), c)

	_, err = combinatorics.Binomial(100, 50)
	assert.ErrorIs(t, err, combinatorics.ErrOverflow)
}

func TestMultinomial(t *testing.T) {
	// "AAABBC": 6!/(3!2!1!) = 60.
	m, err := combinatorics.Multinomial(3, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(60), m)

	m, err = combinatorics.Multinomial()
	require.NoError(t, err)
	assert.Equal(t, int64(1), m)

	_, err = combinatorics.Multinomial(2, -1)
	assert.ErrorIs(t, err, combinatorics.ErrNegative)
}

func TestFactorials(t *testing.T) {
	const p = 1_000_000_007
	f, err := combinatorics.NewFactorials(1000, p)
	require.NoError(t, err)

	for _, c := range []struct{ n, k int }{{10, 3}, {30, 15}, {60, 1}, {66, 33}} {
		exact, err := combinatorics.Binomial(int64(c.n), int64(c.k))
		require.NoError(t, err)
		assert.Equal(t, exact%p, f.Binomial(c.n, c.k), "C(%d,%d)", c.n, c.k)
	}
	assert.Equal(t, int64(3628800), f.Factorial(10))
	assert.Zero(t, f.Binomial(3, 4))
	assert.Zero(t, f.Binomial(1001, 1), "beyond the table")
	assert.Zero(t, f.Factorial(1001))
	assert.Zero(t, f.Factorial(-1))

	_, err = combinatorics.NewFactorials(10, 7)
	assert.ErrorIs(t, err, combinatorics.ErrBadModulus)
	_, err = combinatorics.NewFactorials(10, 15)
	assert.ErrorIs(t, err, combinatorics.ErrBadModulus)
	_, err = combinatorics.NewFactorials(1<<40, 1<<61-1)
	assert.ErrorIs(t, err, combinatorics.ErrTooLarge)
}

func TestCatalan(t *testing.T) {
	want := []int64{1, 1, 2, 5, 14, 42, 132, 429, 1430, 4862}
	for n, w := range want {
		c, err := combinatorics.Catalan(int64(n))
		require.NoError(t, err)
		assert.Equal(t, w, c, "Catalan(%d)", n)
	}
	c, err := combinatorics.Catalan(35)
	require.NoError(t, err)
	assert.Equal(t, int64(3_116_285_494_907_301_262), c)

	_, err = combinatorics.Catalan(40)
	assert.ErrorIs(t, err, combinatorics.ErrOverflow)
}

func TestDerangements(t *testing.T) {
	want := []int64{1, 0, 1, 2, 9, 44, 265, 1854}
	for n, w := range want {
		d, err := combinatorics.Derangements(n, 0)
		require.NoError(t, err)
		assert.Equal(t, w, d, "D(%d)", n)
	}

	d, err := combinatorics.Derangements(20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(895_014_631_192_902_121), d)

	_, err = combinatorics.Derangements(21, 0)
	assert.ErrorIs(t, err, combinatorics.ErrOverflow)

	d, err = combinatorics.Derangements(21, 1_000_000_007)
	require.NoError(t, err)
	assert.Less(t, d, int64(1_000_000_007))

	// A modulus above 2^62 still matches the exact value below it.
	d, err = combinatorics.Derangements(20, 9_223_372_036_854_775_783)
	require.NoError(t, err)
	assert.Equal(t, int64(895_014_631_192_902_121), d)
}

func TestNecklacesAndTrees(t *testing.T) {
	n, err := combinatorics.Necklaces(4, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(24), n)

	n, err = combinatorics.Necklaces(6, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(14), n)

	trees, err := combinatorics.LabeledTrees(5)
	require.NoError(t, err)
	assert.Equal(t, int64(125), trees)

	_, err = combinatorics.LabeledTrees(30)
	assert.ErrorIs(t, err, combinatorics.ErrOverflow)
}

func TestPrufer_Book(t *testing.T) {
	edges := [][2]int{{1, 2}, {1, 3}, {1, 4}, {2, 5}}
	code, err := combinatorics.PruferEncode(5, edges)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2}, code)

	back, err := combinatorics.PruferDecode(code)
	require.NoError(t, err)
	assert.ElementsMatch(t, normalize(edges), normalize(back))
}

// TestPrufer_Bijection decodes every code for n = 6 and checks that
// encoding gives the code back, which confirms Cayley's 6^4 trees.
func TestPrufer_Bijection(t *testing.T) {
	const n = 6
	trees := map[string]bool{}
	code := make([]int, n-2)
	var gen func(i int)
	gen = func(i int) {
		if i == len(code) {
			edges, err := combinatorics.PruferDecode(code)
			require.NoError(t, err)
			require.Len(t, edges, n-1)
			again, err := combinatorics.PruferEncode(n, edges)
			require.NoError(t, err)
			require.Equal(t, code, again)
			trees[key(edges)] = true

			return
		}
		for v := 1; v <= n; v++ {
			code[i] = v
			gen(i + 1)
		}
	}
	gen(0)

	want, err := combinatorics.LabeledTrees(n)
	require.NoError(t, err)
	assert.Len(t, trees, int(want))
}

func TestPrufer_Errors(t *testing.T) {
	_, err := combinatorics.PruferEncode(4, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	assert.ErrorIs(t, err, combinatorics.ErrNotTree)
	_, err = combinatorics.PruferEncode(3, [][2]int{{1, 2}})
	assert.ErrorIs(t, err, combinatorics.ErrNotTree)
	_, err = combinatorics.PruferEncode(3, [][2]int{{1, 2}, {2, 4}})
	assert.ErrorIs(t, err, combinatorics.ErrNotTree)
	_, err = combinatorics.PruferDecode([]int{1, 5})
	assert.ErrorIs(t, err, combinatorics.ErrBadCode)

	edges, err := combinatorics.PruferDecode(nil)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}}, edges)
}

func normalize(edges [][2]int) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		if e[0] > e[1] {
			e[0], e[1] = e[1], e[0]
		}
		out[i] = e
	}

	return out
}

func key(edges [][2]int) string {
	norm := normalize(edges)
	sort.Slice(norm, func(i, j int) bool {
		if norm[i][0] != norm[j][0] {
			return norm[i][0] < norm[j][0]
		}

		return norm[i][1] < norm[j][1]
	})
	b := make([]byte, 0, 2*len(norm))
	for _, e := range norm {
		b = append(b, byte(e[0]), byte(e[1]))
	}

	return string(b)
}
