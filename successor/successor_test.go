// SPDX-License-Identifier: MIT

package successor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/successor"
)

// bookSucc is the nine-vertex successor graph 0-indexed:
// 1→3 2→5 3→7 4→6 5→2 6→2 7→1 8→6 9→3.
var bookSucc = []int{2, 4, 6, 5, 1, 1, 0, 5, 2}

func naive(succ []int, x, k int) int {
	for ; k > 0; k-- {
		x = succ[x]
	}

	return x
}

func TestSucc_Book(t *testing.T) {
	g, err := successor.New(bookSucc, 64)
	require.NoError(t, err)

	// succ(4, 6) = 2 in 1-indexed terms.
	got, err := g.Succ(3, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = g.Succ(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestSucc_MatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	succ := make([]int, 50)
	for i := range succ {
		succ[i] = r.Intn(len(succ))
	}
	g, err := successor.New(succ, 1000)
	require.NoError(t, err)

	for q := 0; q < 200; q++ {
		x, k := r.Intn(len(succ)), r.Intn(1001)
		got, err := g.Succ(x, k)
		require.NoError(t, err)
		require.Equal(t, naive(succ, x, k), got, "x=%d k=%d", x, k)
	}
}

func TestSucc_Errors(t *testing.T) {
	_, err := successor.New([]int{0, 2}, 4)
	assert.ErrorIs(t, err, successor.ErrBadSuccessor)
	_, err = successor.New([]int{0}, -1)
	assert.ErrorIs(t, err, successor.ErrStepsOutOfRange)

	g, err := successor.New([]int{1, 0}, 4)
	require.NoError(t, err)
	_, err = g.Succ(2, 1)
	assert.ErrorIs(t, err, successor.ErrVertexOutOfRange)
	_, err = g.Succ(0, 5)
	assert.ErrorIs(t, err, successor.ErrStepsOutOfRange)
}

func TestFloydCycle(t *testing.T) {
	// 0→1→2→3→4→5→3: tail of length 3, cycle 3,4,5.
	succ := []int{1, 2, 3, 4, 5, 3}
	first, length, err := successor.FloydCycle(succ, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, first)
	assert.Equal(t, 3, length)

	first, length, err = successor.FloydCycle([]int{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, length)

	_, _, err = successor.FloydCycle(succ, 9)
	assert.ErrorIs(t, err, successor.ErrVertexOutOfRange)
	_, _, err = successor.FloydCycle([]int{3}, 0)
	assert.ErrorIs(t, err, successor.ErrBadSuccessor)
}
