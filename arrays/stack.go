// SPDX-License-Identifier: MIT

package arrays

import (
	"cmp"
	"fmt"
)

// NearestSmaller returns, for every position k, the index of the nearest
// element to the left of k that is strictly smaller than xs[k], or -1.
//
// The stack holds indices with increasing values; an index popped once is
// never needed again, so the whole scan is amortized O(n).
func NearestSmaller[T cmp.Ordered](xs []T) []int {
	res := make([]int, len(xs))
	stack := make([]int, 0, len(xs))
	for k, x := range xs {
		for len(stack) > 0 && xs[stack[len(stack)-1]] >= x {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			res[k] = -1
		} else {
			res[k] = stack[len(stack)-1]
		}
		stack = append(stack, k)
	}

	return res
}

// SlidingWindowMin returns the minimum of every window of size w, in
// window order. The result has len(xs)-w+1 entries.
//
// Steps:
//  1. The deque keeps window indices whose values strictly increase from front to back.
//  2. A new element evicts every back entry that is not smaller.
//  3. The front leaves once it falls out of the window; it is then the window minimum.
//
// Complexity: O(n) amortized.
func SlidingWindowMin[T cmp.Ordered](xs []T, w int) ([]T, error) {
	if w < 1 || w > len(xs) {
		return nil, fmt.Errorf("%w: %d for length %d", ErrBadWindow, w, len(xs))
	}

	res := make([]T, 0, len(xs)-w+1)
	dq := make([]int, 0, len(xs))
	head := 0
	for k, x := range xs {
		for len(dq) > head && xs[dq[len(dq)-1]] >= x {
			dq = dq[:len(dq)-1]
		}
		dq = append(dq, k)
		if dq[head] <= k-w {
			head++
		}
		if k >= w-1 {
			res = append(res, xs[dq[head]])
		}
	}

	return res, nil
}
