// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"fmt"
)

// BinarySearch reports the position of x in the sorted slice xs.
// With duplicates, any matching position may be returned.
//
// Complexity: O(log n).
func BinarySearch[T cmp.Ordered](xs []T, x T) (int, bool) {
	a, b := 0, len(xs)-1
	for a <= b {
		k := a + (b-a)/2
		switch {
		case xs[k] == x:
			return k, true
		case xs[k] < x:
			a = k + 1
		default:
			b = k - 1
		}
	}

	return -1, false
}

// JumpSearch locates x in the sorted slice xs by walking right with jumps
// of n/2, n/4, ..., 1, never passing an element larger than x. It returns
// the last position holding x.
//
// Complexity: O(log n).
func JumpSearch[T cmp.Ordered](xs []T, x T) (int, bool) {
	k := -1
	for step := len(xs) / 2; step >= 1; step /= 2 {
		for k+step < len(xs) && xs[k+step] <= x {
			k += step
		}
	}
	if k+1 < len(xs) && xs[k+1] <= x {
		k++
	}
	if k >= 0 && xs[k] == x {
		return k, true
	}

	return -1, false
}

// LowerBound returns the first position whose value is not less than x,
// or len(xs) when every value is smaller.
func LowerBound[T cmp.Ordered](xs []T, x T) int {
	a, b := 0, len(xs)
	for a < b {
		k := a + (b-a)/2
		if xs[k] < x {
			a = k + 1
		} else {
			b = k
		}
	}

	return a
}

// UpperBound returns the first position whose value is greater than x.
func UpperBound[T cmp.Ordered](xs []T, x T) int {
	a, b := 0, len(xs)
	for a < b {
		k := a + (b-a)/2
		if xs[k] <= x {
			a = k + 1
		} else {
			b = k
		}
	}

	return a
}

// EqualRange returns the half-open range xs[lo:hi] of elements equal to x.
// hi - lo is the number of occurrences.
func EqualRange[T cmp.Ordered](xs []T, x T) (lo, hi int) {
	return LowerBound(xs, x), UpperBound(xs, x)
}

// SmallestTrue returns the smallest k in [lo, hi] with ok(k) true, for a
// predicate that is false up to some point and true afterwards.
// It reports false when ok(hi) is false.
//
// Complexity: O(log(hi-lo)) calls of ok.
func SmallestTrue(lo, hi int, ok func(int) bool) (int, bool, error) {
	if lo > hi {
		return 0, false, fmt.Errorf("%w: [%d, %d]", ErrBadRange, lo, hi)
	}
	// Jump over the false prefix, as JumpSearch does.
	x := lo - 1
	for step := hi - lo + 1; step >= 1; step /= 2 {
		for x+step <= hi && !ok(x+step) {
			x += step
		}
	}
	if x == hi {
		return 0, false, nil
	}

	return x + 1, true, nil
}

// UnimodalMax returns the position in [lo, hi] where f is maximal, for f
// strictly increasing and then strictly decreasing. It compares f at
// adjacent positions to decide which side holds the peak.
//
// Complexity: O(log(hi-lo)) evaluations of f.
func UnimodalMax(lo, hi int, f func(int) int64) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrBadRange, lo, hi)
	}
	for lo < hi {
		k := lo + (hi-lo)/2
		if f(k) < f(k+1) {
			lo = k + 1
		} else {
			hi = k
		}
	}

	return lo, nil
}
