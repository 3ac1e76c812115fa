// SPDX-License-Identifier: MIT

// Package dsu implements a union-find (disjoint set union) structure over the
// elements 0..n-1, with union by size and path compression.
//
// Complexity: every operation runs in O(α(n)) amortized time, where α is the
// inverse Ackermann function; memory is O(n).
//
// DSU is not safe for concurrent mutation.
package dsu

// DSU maintains a partition of {0, …, n-1} into disjoint sets.
type DSU struct {
	parent []int
	size   []int
	count  int
}

// New returns a DSU in which every element is its own singleton set.
// Negative n is treated as 0.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{parent: make([]int, n), size: make([]int, n), count: n}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the representative of x's set, compressing the path
// (path halving) on the way.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of a and b. It reports false if they were already
// in the same set. The smaller set is linked under the larger.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Same reports whether a and b belong to the same set.
func (d *DSU) Same(a, b int) bool { return d.Find(a) == d.Find(b) }

// Size returns the number of elements in x's set.
func (d *DSU) Size(x int) int { return d.size[d.Find(x)] }

// Count returns the number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// Len returns n, the number of elements.
func (d *DSU) Len() int { return len(d.parent) }
