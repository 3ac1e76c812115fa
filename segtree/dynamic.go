// SPDX-License-Identifier: MIT

package segtree

import "fmt"

// Dynamic is a sum segment tree over the index space [0, n) for n up to
// 2^62. Only nodes on updated paths exist, so memory is O(u log n) after
// u updates.
type Dynamic struct {
	n     int64
	nodes []dynNode // nodes[0] is the root
}

// dynNode children are indices into nodes; 0 means absent.
type dynNode struct {
	sum         int64
	left, right int
}

// NewDynamic returns an all-zero tree over [0, n).
func NewDynamic(n int64) (*Dynamic, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}

	return &Dynamic{n: n, nodes: []dynNode{{}}}, nil
}

// Len returns the size of the index space.
func (d *Dynamic) Len() int64 { return d.n }

// Nodes returns the number of allocated nodes.
func (d *Dynamic) Nodes() int { return len(d.nodes) }

// Add adds x to element k.
func (d *Dynamic) Add(k, x int64) error {
	if err := checkIndex(k, d.n); err != nil {
		return err
	}
	v, l, r := 0, int64(0), d.n-1
	for {
		d.nodes[v].sum += x
		if l == r {
			return nil
		}
		m := l + (r-l)/2
		if k <= m {
			if d.nodes[v].left == 0 {
				d.nodes = append(d.nodes, dynNode{})
				d.nodes[v].left = len(d.nodes) - 1
			}
			v, r = d.nodes[v].left, m
		} else {
			if d.nodes[v].right == 0 {
				d.nodes = append(d.nodes, dynNode{})
				d.nodes[v].right = len(d.nodes) - 1
			}
			v, l = d.nodes[v].right, m+1
		}
	}
}

// Sum returns the sum of the elements in [a, b].
func (d *Dynamic) Sum(a, b int64) (int64, error) {
	if err := checkRange(a, b, d.n); err != nil {
		return 0, err
	}

	return d.query(0, 0, d.n-1, a, b), nil
}

func (d *Dynamic) query(v int, l, r, a, b int64) int64 {
	if b < l || r < a {
		return 0
	}
	if a <= l && r <= b {
		return d.nodes[v].sum
	}
	m := l + (r-l)/2
	var s int64
	if c := d.nodes[v].left; c != 0 {
		s += d.query(c, l, m, a, b)
	}
	if c := d.nodes[v].right; c != 0 {
		s += d.query(c, m+1, r, a, b)
	}

	return s
}
