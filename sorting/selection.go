// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"fmt"
	"math/rand"
)

// QuickSelect returns the k-th smallest element (0-based) of xs without
// modifying it. Pivots are drawn from rng, which makes the expected
// running time linear whatever the input order.
//
// Steps:
//  1. Copy xs and keep an active range [a, b] that contains rank k.
//  2. Partition the range three ways around a random pivot.
//  3. Recurse into the part holding k, or stop when k hits the pivot block.
//
// Complexity: O(n) expected, O(n²) worst case.
func QuickSelect[T cmp.Ordered](xs []T, k int, rng *rand.Rand) (T, error) {
	var zero T
	if k < 0 || k >= len(xs) {
		return zero, fmt.Errorf("%w: %d for length %d", ErrBadRank, k, len(xs))
	}
	if rng == nil {
		return zero, ErrNilRand
	}

	work := append([]T(nil), xs...)
	a, b := 0, len(work)-1
	for a < b {
		pivot := work[a+rng.Intn(b-a+1)]
		lt, gt := partition3(work, a, b, pivot)
		switch {
		case k < lt:
			b = lt - 1
		case k > gt:
			a = gt + 1
		default:
			return pivot, nil
		}
	}

	return work[k], nil
}

// partition3 rearranges xs[a..b] into values < pivot, == pivot and
// > pivot, and returns the bounds [lt, gt] of the middle block.
func partition3[T cmp.Ordered](xs []T, a, b int, pivot T) (lt, gt int) {
	lt, gt = a, b
	for i := a; i <= gt; {
		switch {
		case xs[i] < pivot:
			xs[lt], xs[i] = xs[i], xs[lt]
			lt++
			i++
		case xs[i] > pivot:
			xs[gt], xs[i] = xs[i], xs[gt]
			gt--
		default:
			i++
		}
	}

	return lt, gt
}
