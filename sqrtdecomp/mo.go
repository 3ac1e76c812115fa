// SPDX-License-Identifier: MIT

package sqrtdecomp

import (
	"fmt"
	"math"
	"sort"
)

// Mo answers range queries over an array of length n offline. The caller
// keeps the state of a window: add(k) and remove(k) extend or shrink it by
// element k, and answer() reports the result for the current window.
// Results are returned in the order of queries.
//
// Steps:
//  1. Sort queries by block of L (block width about √n), then by R;
//     R runs backwards in every other block to save the return sweep.
//  2. Move the window between consecutive queries one element at a time,
//     always growing before shrinking so it never becomes inverted.
//
// Complexity: O((n + q)·√n) window operations.
func Mo[R any](n int, queries []Query, add, remove func(k int), answer func() R) ([]R, error) {
	if add == nil || remove == nil || answer == nil {
		return nil, ErrNilCallback
	}
	for i, q := range queries {
		if err := checkRange(q.L, q.R, n); err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}

	width := max(1, int(math.Sqrt(float64(n))))
	order := make([]int, len(queries))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		qa, qb := queries[order[a]], queries[order[b]]
		ba, bb := qa.L/width, qb.L/width
		if ba != bb {
			return ba < bb
		}
		if ba%2 == 1 {
			return qa.R > qb.R
		}

		return qa.R < qb.R
	})

	res := make([]R, len(queries))
	l, r := 0, -1 // empty window
	for _, i := range order {
		q := queries[i]
		for l > q.L {
			l--
			add(l)
		}
		for r < q.R {
			r++
			add(r)
		}
		for l < q.L {
			remove(l)
			l++
		}
		for r > q.R {
			remove(r)
			r--
		}
		res[i] = answer()
	}

	return res, nil
}
