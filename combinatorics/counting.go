// SPDX-License-Identifier: MIT

package combinatorics

import (
	"fmt"

	"github.com/katalvlaran/cphb/numtheory"
)

// Catalan returns the n-th Catalan number, the count of valid parenthesis
// expressions with n pairs, by C(k+1) = C(k)·2(2k+1)/(k+2).
func Catalan(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	c := int64(1)
	for k := int64(0); k < n; k++ {
		var ok bool
		if c, ok = mulDiv(c, 2*(2*k+1), k+2); !ok {
			return 0, fmt.Errorf("%w: Catalan(%d)", ErrOverflow, n)
		}
	}

	return c, nil
}

// Derangements returns the number of permutations of n elements with no
// fixed point, by D(n) = (n-1)(D(n-1) + D(n-2)) with D(0) = 1, D(1) = 0.
// Values are reduced modulo mod when mod > 0; otherwise an exact result
// that exceeds int64 reports ErrOverflow.
func Derangements(n int, mod int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n == 0 {
		if mod > 0 {
			return 1 % mod, nil
		}

		return 1, nil
	}
	prev, cur := int64(1), int64(0) // D(0), D(1)
	for k := 2; k <= n; k++ {
		var next int64
		if mod > 0 {
			sum := prev - (mod - cur) // (prev + cur) mod mod, both in [0, mod)
			if sum < 0 {
				sum += mod
			}
			next = mulMod(int64(k-1)%mod, sum, mod)
		} else {
			var ok bool
			if s := prev + cur; s >= 0 {
				next, ok = mulExact(int64(k-1), s)
			}
			if !ok {
				return 0, fmt.Errorf("%w: D(%d)", ErrOverflow, n)
			}
		}
		prev, cur = cur, next
	}

	return cur, nil
}

// Necklaces counts necklaces of n beads in m colors, where rotations are
// the same necklace. By Burnside's lemma the count is the average number
// of colorings fixed by a rotation, and rotating by k fixes
// m^gcd(k, n) colorings.
func Necklaces(n, m int64) (int64, error) {
	if n < 0 || m < 0 {
		return 0, fmt.Errorf("%w: n = %d, m = %d", ErrNegative, n, m)
	}
	if n == 0 {
		return 1, nil
	}
	var sum int64
	for k := int64(0); k < n; k++ {
		fixed, ok := power(m, numtheory.GCD(k, n))
		if !ok || sum > (1<<63-1)-fixed {
			return 0, fmt.Errorf("%w: necklaces(%d, %d)", ErrOverflow, n, m)
		}
		sum += fixed
	}

	return sum / n, nil
}

// LabeledTrees returns n^(n-2), the number of distinct trees on n labeled
// vertices (Cayley's formula).
func LabeledTrees(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n <= 2 {
		return 1, nil
	}
	res, ok := power(n, n-2)
	if !ok {
		return 0, fmt.Errorf("%w: %d^%d", ErrOverflow, n, n-2)
	}

	return res, nil
}

// power returns x^k exactly for x, k >= 0.
func power(x, k int64) (int64, bool) {
	res := int64(1)
	for ; k > 0; k-- {
		var ok bool
		if res, ok = mulExact(res, x); !ok {
			return 0, false
		}
	}

	return res, true
}
