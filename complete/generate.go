// SPDX-License-Identifier: MIT

package complete

import (
	"cmp"
	"fmt"
)

// Subsets visits every subset of {0, ..., n-1} by recursion: at element k
// the search first leaves k out, then takes it. The empty subset comes
// first and {0..n-1} last.
//
// Complexity: O(2^n · n).
func Subsets(n int, visit func(subset []int) bool) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	subset := make([]int, 0, n)
	var search func(k int) bool
	search = func(k int) bool {
		if k == n {
			return visit(subset)
		}
		if !search(k + 1) {
			return false
		}
		subset = append(subset, k)
		ok := search(k + 1)
		subset = subset[:len(subset)-1]

		return ok
	}
	search(0)

	return nil
}

// SubsetsBits lists every subset of {0, ..., n-1} in the order of its
// bitmask 0, 1, ..., 2^n-1. Element k belongs to mask b iff b&(1<<k) != 0.
func SubsetsBits(n int) ([][]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n > MaxBitSubsets {
		return nil, fmt.Errorf("%w: %d elements, limit %d", ErrTooLarge, n, MaxBitSubsets)
	}

	res := make([][]int, 0, 1<<n)
	for b := 0; b < 1<<n; b++ {
		var subset []int
		for k := 0; k < n; k++ {
			if b&(1<<k) != 0 {
				subset = append(subset, k)
			}
		}
		res = append(res, subset)
	}

	return res, nil
}

// Permutations visits every permutation of {0, ..., n-1} in
// lexicographic order by extending a prefix with each unused element.
//
// Complexity: O(n! · n).
func Permutations(n int, visit func(perm []int) bool) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	perm := make([]int, 0, n)
	chosen := make([]bool, n)
	var search func() bool
	search = func() bool {
		if len(perm) == n {
			return visit(perm)
		}
		for i := 0; i < n; i++ {
			if chosen[i] {
				continue
			}
			chosen[i] = true
			perm = append(perm, i)
			ok := search()
			perm = perm[:len(perm)-1]
			chosen[i] = false
			if !ok {
				return false
			}
		}

		return true
	}
	search()

	return nil
}

// NextPermutation rearranges xs into the lexicographically next
// permutation and reports true, or leaves xs sorted ascending and reports
// false when xs was the last permutation. Duplicates are handled, so each
// distinct arrangement appears once.
func NextPermutation[T cmp.Ordered](xs []T) bool {
	i := len(xs) - 2
	for i >= 0 && xs[i] >= xs[i+1] {
		i--
	}
	if i >= 0 {
		j := len(xs) - 1
		for xs[j] <= xs[i] {
			j--
		}
		xs[i], xs[j] = xs[j], xs[i]
	}
	for a, b := i+1, len(xs)-1; a < b; a, b = a+1, b-1 {
		xs[a], xs[b] = xs[b], xs[a]
	}

	return i >= 0
}
