// SPDX-License-Identifier: MIT

package tree

import "fmt"

// DistinctInSubtrees returns, for every vertex, the number of distinct
// values in its subtree. Every vertex must have a value.
//
// Sets are merged small-to-large: each child's set is poured into the
// largest one, so every value moves O(log n) times.
// Complexity: O(n log n) set operations.
func DistinctInSubtrees[V comparable](t *Tree, values map[string]V) (map[string]int, error) {
	if t == nil {
		return nil, ErrGraphNil
	}
	n := t.Len()
	sets := make([]map[V]struct{}, n)
	out := make(map[string]int, n)

	for i := n - 1; i >= 0; i-- {
		v := t.order[i]
		own, ok := values[t.c.ID(v)]
		if !ok {
			return nil, fmt.Errorf("%w: no value for %q", ErrVertexNotFound, t.c.ID(v))
		}

		// Adopt the largest child set, then pour the others into it.
		heavy := -1
		for _, k := range t.kids[v] {
			if heavy < 0 || len(sets[k]) > len(sets[heavy]) {
				heavy = k
			}
		}
		var set map[V]struct{}
		if heavy < 0 {
			set = make(map[V]struct{})
		} else {
			set = sets[heavy]
		}
		for _, k := range t.kids[v] {
			if k != heavy {
				for x := range sets[k] {
					set[x] = struct{}{}
				}
			}
			sets[k] = nil
		}
		set[own] = struct{}{}
		sets[v] = set
		out[t.c.ID(v)] = len(set)
	}

	return out, nil
}
