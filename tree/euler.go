// SPDX-License-Identifier: MIT

package tree

import "github.com/katalvlaran/cphb/rangeq"

// EulerLCA answers LCA queries in O(1) after O(n log n) preprocessing.
//
// The Euler tour lists a vertex on entry and again after each child
// returns; the LCA of a and b is the shallowest vertex in the tour between
// their first occurrences.
type EulerLCA struct {
	t     *Tree
	tour  []int
	first []int
	table *rangeq.SparseTable[int] // holds tour positions
}

// NewEulerLCA builds the tour and its sparse table.
func NewEulerLCA(t *Tree) *EulerLCA {
	n := t.Len()
	e := &EulerLCA{t: t, tour: make([]int, 0, 2*n-1), first: make([]int, n)}

	var walk func(int)
	walk = func(v int) {
		e.first[v] = len(e.tour)
		e.tour = append(e.tour, v)
		for _, k := range t.kids[v] {
			walk(k)
			e.tour = append(e.tour, v)
		}
	}
	walk(t.root)

	positions := make([]int, len(e.tour))
	for i := range positions {
		positions[i] = i
	}
	e.table = rangeq.NewSparseTable(positions, func(a, b int) int {
		if t.depth[e.tour[b]] < t.depth[e.tour[a]] {
			return b
		}

		return a
	})

	return e
}

// Query returns the lowest common ancestor of a and b.
func (e *EulerLCA) Query(a, b string) (string, error) {
	i, err := e.t.index(a)
	if err != nil {
		return "", err
	}
	j, err := e.t.index(b)
	if err != nil {
		return "", err
	}

	lo, hi := e.first[i], e.first[j]
	if lo > hi {
		lo, hi = hi, lo
	}
	pos, err := e.table.Query(lo, hi)
	if err != nil {
		return "", err
	}

	return e.t.c.ID(e.tour[pos]), nil
}
