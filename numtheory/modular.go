// SPDX-License-Identifier: MIT

package numtheory

import (
	"fmt"
	"math/bits"
)

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 when either
// is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}

// ExtGCD returns g = gcd(a, b) together with x, y such that ax + by = g.
func ExtGCD(a, b int64) (g, x, y int64) {
	oldR, r := a, b
	oldX, xx := int64(1), int64(0)
	oldY, yy := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldX, xx = xx, oldX-q*xx
		oldY, yy = yy, oldY-q*yy
	}
	if oldR < 0 {
		return -oldR, -oldX, -oldY
	}

	return oldR, oldX, oldY
}

// MulMod returns a·b mod m in [0, m) without overflow.
func MulMod(a, b, m int64) (int64, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, m)
	}

	return mulMod(a, b, m), nil
}

// mulMod is MulMod for a modulus already known to be positive.
func mulMod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(norm(a, m)), uint64(norm(b, m)))

	return int64(bits.Rem64(hi, lo, uint64(m)))
}

func norm(x, m int64) int64 {
	if x %= m; x < 0 {
		x += m
	}

	return x
}

// ModPow returns x^n mod m by repeated squaring.
//
// Complexity: O(log n).
func ModPow(x, n, m int64) (int64, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, m)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: exponent %d", ErrNegative, n)
	}
	res, base := norm(1, m), norm(x, m)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = mulMod(res, base, m)
		}
		base = mulMod(base, base, m)
	}

	return res, nil
}

// ModInverse returns the x⁻¹ in [0, m) with x·x⁻¹ ≡ 1 (mod m). It exists
// exactly when gcd(x, m) = 1 and is found with ExtGCD.
func ModInverse(x, m int64) (int64, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, m)
	}
	g, inv, _ := ExtGCD(norm(x, m), m)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, x, m, g)
	}

	return norm(inv, m), nil
}

// CRT solves x ≡ rems[i] (mod mods[i]) for all i and returns the smallest
// non-negative solution x together with the combined modulus, the lcm of
// mods. Moduli need not be coprime; ErrNoSolution reports a contradiction.
//
// Steps:
//  1. Start from x ≡ 0 (mod 1).
//  2. Merge x ≡ r1 (mod m1) with x ≡ r2 (mod m2): with g = gcd(m1, m2),
//     r2 - r1 must be divisible by g, and x = r1 + m1·t where
//     t ≡ (r2-r1)/g · (m1/g)⁻¹ (mod m2/g).
func CRT(rems, mods []int64) (x, modulus int64, err error) {
	if len(rems) != len(mods) {
		return 0, 0, fmt.Errorf("%w: %d remainders, %d moduli", ErrLengthMismatch, len(rems), len(mods))
	}
	x, modulus = 0, 1
	for i := range rems {
		m2 := mods[i]
		if m2 <= 0 {
			return 0, 0, fmt.Errorf("%w: mods[%d] = %d", ErrBadModulus, i, m2)
		}
		r2 := norm(rems[i], m2)
		g := GCD(modulus, m2)
		if (r2-x%m2)%g != 0 {
			return 0, 0, fmt.Errorf("%w: equation %d", ErrNoSolution, i)
		}
		step := m2 / g
		if modulus > (1<<63-1)/step {
			return 0, 0, fmt.Errorf("%w: combined modulus", ErrOverflow)
		}
		inv, err := ModInverse(modulus/g, step)
		if err != nil {
			return 0, 0, err
		}
		diff := norm((r2-x%m2)/g, step)
		t := mulMod(diff, inv, step)
		next := modulus * step
		// x < modulus and t < step, so the sum stays below next.
		x += modulus * t
		modulus = next
	}

	return x, modulus, nil
}
