// SPDX-License-Identifier: MIT

package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/dsu"
)

func TestDSU_Basics(t *testing.T) {
	d := dsu.New(8)
	require.Equal(t, 8, d.Count())

	assert.True(t, d.Union(1, 4))
	assert.True(t, d.Union(4, 7))
	assert.False(t, d.Union(1, 7), "already joined")
	assert.True(t, d.Union(2, 3))
	assert.True(t, d.Union(5, 6))
	assert.True(t, d.Union(3, 6))

	assert.True(t, d.Same(2, 5))
	assert.False(t, d.Same(1, 2))
	assert.Equal(t, 3, d.Size(7))
	assert.Equal(t, 4, d.Size(2))
	assert.Equal(t, 1, d.Size(0))
	assert.Equal(t, 3, d.Count())
	assert.Equal(t, 8, d.Len())
}

func TestDSU_Empty(t *testing.T) {
	assert.Zero(t, dsu.New(0).Count())
	assert.Zero(t, dsu.New(-3).Len())
}

// TestDSU_AgainstNaive compares DSU with a relabel-on-merge partition.
func TestDSU_AgainstNaive(t *testing.T) {
	const n = 200
	rnd := rand.New(rand.NewSource(1))
	d := dsu.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 500; step++ {
		a, b := rnd.Intn(n), rnd.Intn(n)
		merged := d.Union(a, b)
		assert.Equal(t, label[a] != label[b], merged)
		if merged {
			old := label[b]
			for i := range label {
				if label[i] == old {
					label[i] = label[a]
				}
			}
		}
		x, y := rnd.Intn(n), rnd.Intn(n)
		require.Equal(t, label[x] == label[y], d.Same(x, y))
	}
}
