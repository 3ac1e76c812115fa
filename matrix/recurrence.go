// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// LinearRecurrence returns f(n) for
//
//	f(k) = coeffs[0]·f(k-1) + coeffs[1]·f(k-2) + ... + coeffs[d-1]·f(k-d)
//
// with f(0..d-1) = initial, reduced by mod when mod > 0.
//
// Steps:
//  1. Build the d×d companion matrix X whose first row is coeffs and whose
//     subdiagonal is 1, so X·[f(k-1) ... f(k-d)]ᵀ = [f(k) ... f(k-d+1)]ᵀ.
//  2. f(n) is the first entry of X^(n-d+1)·[f(d-1) ... f(0)]ᵀ.
//
// Complexity: O(d³ log n).
func LinearRecurrence(coeffs, initial []int64, n, mod int64) (int64, error) {
	d := len(coeffs)
	if d == 0 || d != len(initial) {
		return 0, fmt.Errorf("%w: %d coefficients, %d initial terms", ErrBadRecurrence, d, len(initial))
	}
	if n < 0 {
		return 0, fmt.Errorf("LinearRecurrence: n=%d: %w", n, ErrNegativeExponent)
	}
	if mod < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, mod)
	}

	x, _ := New(d, d, mod)
	if n < int64(d) {
		return x.norm(initial[n]), nil
	}

	// 1) Companion matrix.
	for j, c := range coeffs {
		x.data[j] = x.norm(c)
	}
	for i := 1; i < d; i++ {
		x.data[i*d+i-1] = x.norm(1)
	}

	// 2) Apply the power to the newest-first state vector.
	p, err := Pow(x, n-int64(d)+1)
	if err != nil {
		return 0, err
	}
	var out int64
	for j := 0; j < d; j++ {
		out = x.add(out, x.mul(p.data[j], x.norm(initial[d-1-j])))
	}

	return out, nil
}

// Fibonacci returns F(n) with F(0)=0, F(1)=1, reduced by mod when mod > 0.
// Complexity: O(log n).
func Fibonacci(n, mod int64) (int64, error) {
	return LinearRecurrence([]int64{1, 1}, []int64{0, 1}, n, mod)
}
