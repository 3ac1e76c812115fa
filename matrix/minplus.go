// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Inf marks a missing edge or an unreachable pair in (min,+) matrices.
const Inf = math.MaxInt64

// MinPlusMul returns c[i][j] = min_k a[i][k] + b[k][j], with Inf absorbing.
// Moduli are ignored: (min,+) matrices hold plain lengths.
// Complexity: O(r·k·c).
func MinPlusMul(a, b *Matrix) (*Matrix, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("MinPlusMul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	out := &Matrix{r: a.r, c: b.c, data: make([]int64, a.r*b.c)}
	for i := range out.data {
		out.data[i] = Inf
	}
	for i := 0; i < a.r; i++ {
		row := out.data[i*b.c : (i+1)*b.c]
		for k := 0; k < a.c; k++ {
			x := a.data[i*a.c+k]
			if x == Inf {
				continue
			}
			for j := 0; j < b.c; j++ {
				if y := b.data[k*b.c+j]; y != Inf && x+y < row[j] {
					row[j] = x + y
				}
			}
		}
	}

	return out, nil
}

// MinPlusIdentity returns the (min,+) identity: 0 on the diagonal, Inf elsewhere.
func MinPlusIdentity(n int) (*Matrix, error) {
	m, err := New(n, n, 0)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		if i%(n+1) != 0 {
			m.data[i] = Inf
		}
	}

	return m, nil
}

// MinPlusPow returns m^k in the (min,+) semiring. When m holds edge
// lengths, entry (i,j) is the shortest walk from i to j with exactly k edges.
// Complexity: O(n³ log k).
func MinPlusPow(m *Matrix, k int64) (*Matrix, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("MinPlusPow: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if k < 0 {
		return nil, fmt.Errorf("MinPlusPow: k=%d: %w", k, ErrNegativeExponent)
	}
	id, err := MinPlusIdentity(m.r)
	if err != nil {
		return nil, err
	}
	base := m.Clone()
	base.mod = 0

	return power(id, base, k, MinPlusMul)
}
