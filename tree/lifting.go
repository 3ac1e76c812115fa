// SPDX-License-Identifier: MIT

package tree

import "fmt"

// KthAncestor returns the vertex k levels above v (k = 0 is v itself).
// Complexity: O(log n).
func (t *Tree) KthAncestor(v string, k int) (string, error) {
	i, err := t.index(v)
	if err != nil {
		return "", err
	}
	if k < 0 || k > t.depth[i] {
		return "", fmt.Errorf("%w: %d above %q at depth %d", ErrNoAncestor, k, v, t.depth[i])
	}

	return t.c.ID(t.lift(i, k)), nil
}

// lift climbs k levels using the binary representation of k.
func (t *Tree) lift(v, k int) int {
	for j := 0; k > 0; j, k = j+1, k>>1 {
		if k&1 == 1 {
			v = t.up[j][v]
		}
	}

	return v
}

// lca returns the lowest common ancestor of dense indices a and b.
func (t *Tree) lca(a, b int) int {
	// 1) Bring both to the same depth.
	if t.depth[a] < t.depth[b] {
		a, b = b, a
	}
	a = t.lift(a, t.depth[a]-t.depth[b])
	if a == b {
		return a
	}

	// 2) Jump both as far as they stay apart.
	for j := len(t.up) - 1; j >= 0; j-- {
		if t.up[j][a] != t.up[j][b] {
			a, b = t.up[j][a], t.up[j][b]
		}
	}

	return t.up[0][a]
}

// LCA returns the lowest common ancestor of a and b.
// Complexity: O(log n).
func (t *Tree) LCA(a, b string) (string, error) {
	i, err := t.index(a)
	if err != nil {
		return "", err
	}
	j, err := t.index(b)
	if err != nil {
		return "", err
	}

	return t.c.ID(t.lca(i, j)), nil
}

// Distance returns the length of the path between a and b:
// dist(a) + dist(b) - 2·dist(lca(a, b)).
// Complexity: O(log n).
func (t *Tree) Distance(a, b string) (int64, error) {
	i, err := t.index(a)
	if err != nil {
		return 0, err
	}
	j, err := t.index(b)
	if err != nil {
		return 0, err
	}

	return t.dist[i] + t.dist[j] - 2*t.dist[t.lca(i, j)], nil
}
