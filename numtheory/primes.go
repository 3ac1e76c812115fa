// SPDX-License-Identifier: MIT

package numtheory

import "fmt"

// IsPrime reports whether n is prime by trial division up to √n.
//
// Complexity: O(√n).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for x := int64(2); x <= n/x; x++ {
		if n%x == 0 {
			return false
		}
	}

	return true
}

// Factors returns the prime factorization of n in ascending order, each
// prime repeated by its multiplicity. Factors(1) is empty.
//
// Complexity: O(√n).
func Factors(n int64) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositive, n)
	}
	var fs []int64
	for x := int64(2); x <= n/x; x++ {
		for n%x == 0 {
			fs = append(fs, x)
			n /= x
		}
	}
	if n > 1 {
		fs = append(fs, n)
	}

	return fs, nil
}

// Sieve returns every prime <= n by the sieve of Eratosthenes.
// n is bounded by MaxSieve.
//
// Complexity: O(n log log n).
func Sieve(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n > MaxSieve {
		return nil, fmt.Errorf("%w: %d, limit %d", ErrTooLarge, n, MaxSieve)
	}
	composite := make([]bool, n+1)
	var primes []int
	for x := 2; x <= n; x++ {
		if composite[x] {
			continue
		}
		primes = append(primes, x)
		for u := x * x; u <= n; u += x {
			composite[u] = true
		}
	}

	return primes, nil
}

// primePowers groups a factorization into (prime, exponent) pairs.
func primePowers(n int64) ([][2]int64, error) {
	fs, err := Factors(n)
	if err != nil {
		return nil, err
	}
	var pp [][2]int64
	for _, p := range fs {
		if k := len(pp); k > 0 && pp[k-1][0] == p {
			pp[k-1][1]++
		} else {
			pp = append(pp, [2]int64{p, 1})
		}
	}

	return pp, nil
}

// DivisorCount returns τ(n), the number of divisors of n:
// the product of (αᵢ+1) over the prime powers pᵢ^αᵢ of n.
func DivisorCount(n int64) (int64, error) {
	pp, err := primePowers(n)
	if err != nil {
		return 0, err
	}
	count := int64(1)
	for _, p := range pp {
		count *= p[1] + 1
	}

	return count, nil
}

// DivisorSum returns σ(n), the sum of the divisors of n:
// the product of (pᵢ^(αᵢ+1) - 1)/(pᵢ - 1).
func DivisorSum(n int64) (int64, error) {
	pp, err := primePowers(n)
	if err != nil {
		return 0, err
	}
	sum := int64(1)
	for _, p := range pp {
		term, power := int64(1), int64(1)
		for k := int64(0); k < p[1]; k++ {
			power *= p[0]
			term += power
		}
		sum *= term
	}

	return sum, nil
}

// Phi returns Euler's totient φ(n), the count of 1 <= x <= n coprime to n.
func Phi(n int64) (int64, error) {
	pp, err := primePowers(n)
	if err != nil {
		return 0, err
	}
	phi := n
	for _, p := range pp {
		phi = phi / p[0] * (p[0] - 1)
	}

	return phi, nil
}

// PhiSieve returns φ(0..n) with φ(0) = 0, sieving every prime p into its
// multiples as φ(k) -= φ(k)/p. n is bounded by MaxSieve.
//
// Complexity: O(n log log n).
func PhiSieve(n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n > MaxSieve {
		return nil, fmt.Errorf("%w: %d, limit %d", ErrTooLarge, n, MaxSieve)
	}
	phi := make([]int64, n+1)
	for k := range phi {
		phi[k] = int64(k)
	}
	for p := 2; p <= n; p++ {
		if phi[p] != int64(p) {
			continue
		}
		for k := p; k <= n; k += p {
			phi[k] -= phi[k] / int64(p)
		}
	}

	return phi, nil
}
