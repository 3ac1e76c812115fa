// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Mul returns a·b.
// Stage 1 (Validate): a.Cols == b.Rows and equal moduli.
// Stage 2 (Execute): i-k-j loop order, skipping zero entries of a.
// Complexity: O(r·k·c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	if a.mod != b.mod {
		return nil, fmt.Errorf("Mul: %d vs %d: %w", a.mod, b.mod, ErrModulusMismatch)
	}

	out := &Matrix{r: a.r, c: b.c, mod: a.mod, data: make([]int64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		row := out.data[i*b.c : (i+1)*b.c]
		for k := 0; k < a.c; k++ {
			x := a.data[i*a.c+k]
			if x == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				row[j] = out.add(row[j], out.mul(x, b.data[k*b.c+j]))
			}
		}
	}

	return out, nil
}

// Pow returns m^k by repeated squaring; m^0 is the identity.
// Complexity: O(n³ log k).
func Pow(m *Matrix, k int64) (*Matrix, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Pow: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if k < 0 {
		return nil, fmt.Errorf("Pow: k=%d: %w", k, ErrNegativeExponent)
	}

	result, err := Identity(m.r, m.mod)
	if err != nil {
		return nil, err
	}

	return power(result, m.Clone(), k, Mul)
}

// power folds base^k into acc with the given product.
func power(acc, base *Matrix, k int64, mul func(a, b *Matrix) (*Matrix, error)) (*Matrix, error) {
	var err error
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			if acc, err = mul(acc, base); err != nil {
				return nil, err
			}
		}
		if k > 1 {
			if base, err = mul(base, base); err != nil {
				return nil, err
			}
		}
	}

	return acc, nil
}
