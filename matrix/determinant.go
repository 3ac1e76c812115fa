// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// DeterminantMod returns det(m) modulo m.Mod(), which must be a prime
// (any modulus works as long as every pivot is invertible).
//
// Steps:
//  1. Gaussian elimination on a copy: pick the first non-zero pivot in the
//     column, swapping rows flips the sign.
//  2. Eliminate below the pivot with its modular inverse.
//  3. The determinant is the signed product of the pivots.
//
// Complexity: O(n³).
func DeterminantMod(m *Matrix) (int64, error) {
	if m.r != m.c {
		return 0, fmt.Errorf("DeterminantMod: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if m.mod <= 0 {
		return 0, fmt.Errorf("DeterminantMod: %w: modulus %d", ErrBadModulus, m.mod)
	}

	n, a := m.r, m.Clone()
	det := a.norm(1)
	for col := 0; col < n; col++ {
		// 1) Pivot search.
		p := col
		for p < n && a.data[p*n+col] == 0 {
			p++
		}
		if p == n {
			return 0, nil
		}
		if p != col {
			for j := 0; j < n; j++ {
				a.data[p*n+j], a.data[col*n+j] = a.data[col*n+j], a.data[p*n+j]
			}
			det = a.norm(-det)
		}

		// 2) Eliminate.
		pivot := a.data[col*n+col]
		inv, ok := inverse(pivot, a.mod)
		if !ok {
			return 0, fmt.Errorf("DeterminantMod: %w: pivot %d has no inverse mod %d", ErrBadModulus, pivot, a.mod)
		}
		det = a.mul(det, pivot)
		for i := col + 1; i < n; i++ {
			f := a.mul(a.data[i*n+col], inv)
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a.data[i*n+j] = a.norm(a.data[i*n+j] - a.mul(f, a.data[col*n+j]))
			}
		}
	}

	return det, nil
}

// inverse returns x⁻¹ mod m via the extended Euclidean algorithm.
func inverse(x, m int64) (int64, bool) {
	oldR, r := x, m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false
	}
	if oldS %= m; oldS < 0 {
		oldS += m
	}

	return oldS, true
}
