// SPDX-License-Identifier: MIT

package tree

// Diameter returns the length of the longest path in the tree and the path
// itself, found with two searches: the vertex a farthest from the root is
// one end of a diameter, and the vertex farthest from a is the other.
// Ties go to the vertex met first in preorder.
// Complexity: O(n).
func (t *Tree) Diameter() (int64, []string) {
	a := t.farthest(t.dist)
	distA, via := t.distancesFrom(a)
	b := t.farthest(distA)

	path := []int{b}
	for v := b; v != a; v = via[v] {
		path = append(path, via[v])
	}

	return distA[b], t.ids(path)
}

// farthest returns the preorder-first vertex with the largest d.
func (t *Tree) farthest(d []int64) int {
	best := t.order[0]
	for _, v := range t.order {
		if d[v] > d[best] {
			best = v
		}
	}

	return best
}

// distancesFrom walks the tree from src and returns each vertex's distance
// to src together with its neighbor on the way back to src.
func (t *Tree) distancesFrom(src int) ([]int64, []int) {
	n := t.Len()
	d := make([]int64, n)
	via := make([]int, n)
	for i := range via {
		via[i] = -1
	}
	via[src] = src

	stack := []int{src}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit := func(v int, w int64) {
			if via[v] < 0 {
				via[v] = u
				d[v] = d[u] + w
				stack = append(stack, v)
			}
		}
		if p := t.parent[u]; p >= 0 {
			visit(p, t.length[u])
		}
		for _, k := range t.kids[u] {
			visit(k, t.length[k])
		}
	}

	return d, via
}

// FarthestDistances returns, for every vertex, the length of the longest
// path starting there.
//
// Steps:
//  1. Bottom-up: down1/down2 are the two longest downward paths through
//     different children.
//  2. Top-down: up[v] is the longest path leaving v through its parent,
//     using the parent's best downward path unless it runs through v.
//
// Complexity: O(n).
func (t *Tree) FarthestDistances() map[string]int64 {
	n := t.Len()
	down1 := make([]int64, n)
	down2 := make([]int64, n)
	best := make([]int, n) // child realizing down1, -1 for leaves
	up := make([]int64, n)

	// 1) Reverse preorder visits children before parents.
	for i := range best {
		best[i] = -1
	}
	for i := n - 1; i >= 0; i-- {
		v := t.order[i]
		for _, k := range t.kids[v] {
			cand := down1[k] + t.length[k]
			switch {
			case cand > down1[v]:
				down2[v] = down1[v]
				down1[v], best[v] = cand, k
			case cand > down2[v]:
				down2[v] = cand
			}
		}
	}

	// 2) Preorder visits parents before children.
	for _, v := range t.order {
		for _, k := range t.kids[v] {
			through := down1[v]
			if best[v] == k {
				through = down2[v]
			}
			up[k] = t.length[k] + max(up[v], through)
		}
	}

	out := make(map[string]int64, n)
	for v := 0; v < n; v++ {
		out[t.c.ID(v)] = max(down1[v], up[v])
	}

	return out
}
