// SPDX-License-Identifier: MIT

package stringalgo_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/stringalgo"
)

func TestTrie(t *testing.T) {
	tr := stringalgo.NewTrie()
	for _, w := range []string{"CANAL", "CANDY", "THE", "THERE"} {
		assert.True(t, tr.Insert(w))
	}
	assert.False(t, tr.Insert("THE"), "duplicate")
	assert.Equal(t, 4, tr.Len())

	assert.True(t, tr.Contains("THE"))
	assert.True(t, tr.Contains("THERE"))
	assert.False(t, tr.Contains("THER"))
	assert.False(t, tr.Contains("CAN"))
	assert.False(t, tr.Contains(""))

	assert.Equal(t, 2, tr.CountPrefix("CAN"))
	assert.Equal(t, 2, tr.CountPrefix("THE"))
	assert.Equal(t, 1, tr.CountPrefix("THER"))
	assert.Equal(t, 4, tr.CountPrefix(""))
	assert.Zero(t, tr.CountPrefix("X"))

	assert.True(t, tr.Insert(""))
	assert.True(t, tr.Contains(""))
	assert.Equal(t, 5, tr.CountPrefix(""))
}

func TestHasher(t *testing.T) {
	s := "ALLEY ALL"
	h := stringalgo.NewHasher(s)
	assert.Equal(t, len(s), h.Len())

	eq, err := h.Equal(0, 6, 3)
	require.NoError(t, err)
	assert.True(t, eq, "ALL == ALL")

	eq, err = h.Equal(0, 1, 3)
	require.NoError(t, err)
	assert.False(t, eq)

	v, err := h.Hash(6, 9)
	require.NoError(t, err)
	assert.Equal(t, h.HashString("ALL"), v)

	empty, err := h.Hash(4, 4)
	require.NoError(t, err)
	assert.Zero(t, empty)

	_, err = h.Hash(3, 10)
	assert.ErrorIs(t, err, stringalgo.ErrBadRange)
	_, err = stringalgo.NewHasherWith(s, 5, 1)
	assert.ErrorIs(t, err, stringalgo.ErrBadModulus)
	_, err = stringalgo.NewHasherWith(s, 0, 97)
	assert.ErrorIs(t, err, stringalgo.ErrBadModulus)
}

func TestHasher_SmallModulusStillConsistent(t *testing.T) {
	h, err := stringalgo.NewHasherWith("ABCABC", 3, 7)
	require.NoError(t, err)
	eq, err := h.Equal(0, 3, 3)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestZFunction(t *testing.T) {
	assert.Equal(t,
		[]int{0, 0, 0, 2, 0, 0, 5, 0, 0, 7, 0, 0, 2, 0, 0, 1},
		stringalgo.ZFunction("ACBACDACBACBACDA"))
	assert.Empty(t, stringalgo.ZFunction(""))
	assert.Equal(t, []int{0, 3, 2, 1}, stringalgo.ZFunction("aaaa"))
}

func TestPrefixFunction(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 0, 1, 2, 3, 2}, stringalgo.PrefixFunction("ABACABAB"))
	assert.Empty(t, stringalgo.PrefixFunction(""))
}

func TestFindAll(t *testing.T) {
	hits, err := stringalgo.FindAll("HATTIVATTI", "ATT")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6}, hits)

	hits, err = stringalgo.FindAll("aaaa", "aa")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, hits)

	hits, err = stringalgo.FindAll("ab", "abc")
	require.NoError(t, err)
	assert.Empty(t, hits)

	_, err = stringalgo.FindAll("x", "")
	assert.ErrorIs(t, err, stringalgo.ErrEmptyPattern)
}

func TestFindAll_AgreesWithPrefixFunction(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		text := randomString(rng, 1+rng.Intn(40), "ab")
		pat := randomString(rng, 1+rng.Intn(4), "ab")
		hits, err := stringalgo.FindAll(text, pat)
		require.NoError(t, err)
		n, err := stringalgo.CountOccurrences(text, pat)
		require.NoError(t, err)
		assert.Equal(t, len(hits), n, "text=%q pattern=%q", text, pat)
		for _, p := range hits {
			assert.True(t, strings.HasPrefix(text[p:], pat))
		}
	}
}

func TestSuffixArrayAndLCP(t *testing.T) {
	sa := stringalgo.SuffixArray("banana")
	assert.Equal(t, []int{5, 3, 1, 0, 4, 2}, sa)

	lcp, err := stringalgo.LCPArray("banana", sa)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 0, 2}, lcp)

	_, err = stringalgo.LCPArray("banana", []int{0, 1})
	assert.ErrorIs(t, err, stringalgo.ErrSuffixArrayMismatch)
	_, err = stringalgo.LCPArray("abc", []int{0, 0, 1})
	assert.ErrorIs(t, err, stringalgo.ErrSuffixArrayMismatch)

	assert.Equal(t, []int{0}, stringalgo.SuffixArray("x"))
	assert.Empty(t, stringalgo.SuffixArray(""))
}

func TestSuffixArray_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		s := randomString(rng, 1+rng.Intn(30), "abc")
		want := make([]int, len(s))
		for i := range want {
			want[i] = i
		}
		sort.Slice(want, func(a, b int) bool { return s[want[a]:] < s[want[b]:] })
		assert.Equal(t, want, stringalgo.SuffixArray(s), "s=%q", s)
	}
}

func TestCountDistinctSubstrings(t *testing.T) {
	assert.Equal(t, int64(15), stringalgo.CountDistinctSubstrings("banana"))
	assert.Equal(t, int64(93), stringalgo.CountDistinctSubstrings("ACBACDACBACBACDA"))
	assert.Equal(t, int64(4), stringalgo.CountDistinctSubstrings("aaaa"))
	assert.Zero(t, stringalgo.CountDistinctSubstrings(""))
}

func TestMinimalRotation(t *testing.T) {
	for s, want := range map[string]int{"bca": 2, "cabab": 1, "baaba": 1, "dcba": 3, "aaaa": 0, "": 0} {
		assert.Equal(t, want, stringalgo.MinimalRotation(s), "s=%q", s)
	}
	r, err := stringalgo.Rotate("cabab", 1)
	require.NoError(t, err)
	assert.Equal(t, "ababc", r)
	_, err = stringalgo.Rotate("ab", 3)
	assert.ErrorIs(t, err, stringalgo.ErrBadRange)
}

func randomString(rng *rand.Rand, n int, alphabet string) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}

	return b.String()
}
