// SPDX-License-Identifier: MIT

package segtree

import "fmt"

// Persistent is a sum segment tree whose point assignments create new
// versions. An update copies the O(log n) nodes on its path and shares
// everything else with the version it was applied to.
type Persistent struct {
	n     int
	nodes []perNode
	roots []int // roots[v] is the root node of version v
}

type perNode struct {
	sum         int64
	left, right int
}

// NewPersistent builds version 0 from a copy of xs.
func NewPersistent(xs []int64) (*Persistent, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrBadSize)
	}
	p := &Persistent{n: len(xs), nodes: make([]perNode, 0, 2*len(xs))}
	p.roots = []int{p.build(0, len(xs)-1, xs)}

	return p, nil
}

// Versions returns the number of versions; valid versions are [0, Versions()).
func (p *Persistent) Versions() int { return len(p.roots) }

// Set creates a new version equal to version except that element k is x,
// and returns the new version number.
func (p *Persistent) Set(version, k int, x int64) (int, error) {
	if err := p.checkVersion(version); err != nil {
		return 0, err
	}
	if err := checkIndex(k, p.n); err != nil {
		return 0, err
	}
	p.roots = append(p.roots, p.set(p.roots[version], 0, p.n-1, k, x))

	return len(p.roots) - 1, nil
}

// Sum returns the sum of [a, b] in the given version.
func (p *Persistent) Sum(version, a, b int) (int64, error) {
	if err := p.checkVersion(version); err != nil {
		return 0, err
	}
	if err := checkRange(a, b, p.n); err != nil {
		return 0, err
	}

	return p.query(p.roots[version], 0, p.n-1, a, b), nil
}

func (p *Persistent) checkVersion(v int) error {
	if v < 0 || v >= len(p.roots) {
		return fmt.Errorf("%w: %d of %d", ErrUnknownVersion, v, len(p.roots))
	}

	return nil
}

func (p *Persistent) alloc(nd perNode) int {
	p.nodes = append(p.nodes, nd)

	return len(p.nodes) - 1
}

func (p *Persistent) build(l, r int, xs []int64) int {
	if l == r {
		return p.alloc(perNode{sum: xs[l]})
	}
	m := (l + r) / 2
	left, right := p.build(l, m, xs), p.build(m+1, r, xs)

	return p.alloc(perNode{sum: p.nodes[left].sum + p.nodes[right].sum, left: left, right: right})
}

func (p *Persistent) set(v, l, r, k int, x int64) int {
	if l == r {
		return p.alloc(perNode{sum: x})
	}
	nd := p.nodes[v]
	m := (l + r) / 2
	if k <= m {
		nd.left = p.set(nd.left, l, m, k, x)
	} else {
		nd.right = p.set(nd.right, m+1, r, k, x)
	}
	nd.sum = p.nodes[nd.left].sum + p.nodes[nd.right].sum

	return p.alloc(nd)
}

func (p *Persistent) query(v, l, r, a, b int) int64 {
	if b < l || r < a {
		return 0
	}
	if a <= l && r <= b {
		return p.nodes[v].sum
	}
	m := (l + r) / 2

	return p.query(p.nodes[v].left, l, m, a, b) + p.query(p.nodes[v].right, m+1, r, a, b)
}
