// SPDX-License-Identifier: MIT

package combinatorics

import (
	"fmt"

	"github.com/katalvlaran/cphb/numtheory"
)

// Pascal returns rows 0..n of Pascal's triangle, built with
// C(n, k) = C(n-1, k-1) + C(n-1, k).
func Pascal(n int) ([][]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n > MaxPascalRow {
		return nil, fmt.Errorf("%w: row %d, limit %d", ErrOverflow, n, MaxPascalRow)
	}
	rows := make([][]int64, n+1)
	for i := range rows {
		rows[i] = make([]int64, i+1)
		rows[i][0], rows[i][i] = 1, 1
		for k := 1; k < i; k++ {
			rows[i][k] = rows[i-1][k-1] + rows[i-1][k]
		}
	}

	return rows, nil
}

// Binomial returns C(n, k) exactly, or 0 when k < 0 or k > n.
// It multiplies C(n, i+1) = C(n, i)·(n-i)/(i+1) in 128-bit intermediates,
// so it succeeds whenever the result itself fits in int64.
func Binomial(n, k int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n = %d", ErrNegative, n)
	}
	if k < 0 || k > n {
		return 0, nil
	}
	k = min(k, n-k)
	c := int64(1)
	for i := int64(0); i < k; i++ {
		var ok bool
		if c, ok = mulDiv(c, n-i, i+1); !ok {
			return 0, fmt.Errorf("%w: C(%d, %d)", ErrOverflow, n, k)
		}
	}

	return c, nil
}

// Multinomial returns (k1+...+km)! / (k1!·...·km!), the number of ways to
// arrange a multiset with the given multiplicities, as a product of
// binomial coefficients.
func Multinomial(ks ...int64) (int64, error) {
	res, total := int64(1), int64(0)
	for _, k := range ks {
		if k < 0 {
			return 0, fmt.Errorf("%w: %d", ErrNegative, k)
		}
		total += k
		c, err := Binomial(total, k)
		if err != nil {
			return 0, err
		}
		var ok bool
		if res, ok = mulExact(res, c); !ok {
			return 0, fmt.Errorf("%w: multinomial %v", ErrOverflow, ks)
		}
	}

	return res, nil
}

// Factorials holds n! and (n!)⁻¹ modulo a prime p for all n up to a limit.
type Factorials struct {
	p       int64
	fact    []int64
	factInv []int64
}

// NewFactorials precomputes factorials up to n modulo the prime p > n.
// The inverse of n! comes from Fermat's little theorem; the smaller ones
// follow downwards as (k-1)!⁻¹ = k!⁻¹ · k.
//
// Complexity: O(n + log p).
func NewFactorials(n int, p int64) (*Factorials, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n > MaxFactorials {
		return nil, fmt.Errorf("%w: %d, limit %d", ErrTooLarge, n, MaxFactorials)
	}
	if p <= int64(n) || !numtheory.IsPrime(p) {
		return nil, fmt.Errorf("%w: p = %d, n = %d", ErrBadModulus, p, n)
	}
	f := &Factorials{p: p, fact: make([]int64, n+1), factInv: make([]int64, n+1)}
	f.fact[0] = 1
	for k := 1; k <= n; k++ {
		f.fact[k] = mulMod(f.fact[k-1], int64(k), p)
	}
	inv, err := numtheory.ModPow(f.fact[n], p-2, p)
	if err != nil {
		return nil, err
	}
	f.factInv[n] = inv
	for k := n; k > 0; k-- {
		f.factInv[k-1] = mulMod(f.factInv[k], int64(k), p)
	}

	return f, nil
}

// Factorial returns k! mod p, or 0 when k is outside the precomputed range.
func (f *Factorials) Factorial(k int) int64 {
	if k < 0 || k >= len(f.fact) {
		return 0
	}

	return f.fact[k]
}

// Binomial returns C(n, k) mod p, or 0 when k < 0 or k > n.
// n must not exceed the precomputed limit.
func (f *Factorials) Binomial(n, k int) int64 {
	if k < 0 || k > n || n >= len(f.fact) {
		return 0
	}

	return mulMod(f.fact[n], mulMod(f.factInv[k], f.factInv[n-k], f.p), f.p)
}
