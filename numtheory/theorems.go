// SPDX-License-Identifier: MIT

package numtheory

import (
	"fmt"
	"sort"
)

// Zeckendorf returns the unique representation of n as a sum of
// non-consecutive Fibonacci numbers, largest first, found by always taking
// the largest Fibonacci number that fits.
func Zeckendorf(n int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	fib := []int64{1, 2}
	for {
		a, b := fib[len(fib)-2], fib[len(fib)-1]
		if b > n-a {
			break
		}
		fib = append(fib, a+b)
	}

	var parts []int64
	for k := len(fib) - 1; k >= 0 && n > 0; k-- {
		if fib[k] <= n {
			parts = append(parts, fib[k])
			n -= fib[k]
		}
	}

	return parts, nil
}

// PythagoreanTriples returns every primitive triple (a, b, c) with
// a² + b² = c², a < b and c <= limit, ordered by c and then a.
//
// Euclid's formula generates each primitive triple exactly once as
// (m²-n², 2mn, m²+n²) for coprime m > n > 0 of opposite parity.
func PythagoreanTriples(limit int64) ([][3]int64, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, limit)
	}
	var res [][3]int64
	for m := int64(2); m*m+1 <= limit; m++ {
		for n := int64(1); n < m; n++ {
			c := m*m + n*n
			if c > limit {
				break
			}
			if (m-n)%2 == 0 || GCD(m, n) != 1 {
				continue
			}
			a, b := m*m-n*n, 2*m*n
			if a > b {
				a, b = b, a
			}
			res = append(res, [3]int64{a, b, c})
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i][2] != res[j][2] {
			return res[i][2] < res[j][2]
		}

		return res[i][0] < res[j][0]
	})

	return res, nil
}

// WilsonPrime decides primality through Wilson's theorem: n >= 2 is prime
// exactly when (n-1)! ≡ -1 (mod n).
//
// Complexity: O(n), far slower than IsPrime; kept as a worked theorem.
func WilsonPrime(n int64) bool {
	if n < 2 {
		return false
	}
	f := int64(1)
	for k := int64(2); k < n; k++ {
		f = mulMod(f, k, n)
		if f == 0 {
			return false
		}
	}

	return f == n-1
}
