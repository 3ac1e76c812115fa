// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/bits"
)

// MaxCells bounds rows·cols for New.
const MaxCells = 1 << 26

// Matrix is a row-major matrix of int64 values with an optional modulus.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Matrix struct {
	r, c int
	mod  int64
	data []int64
}

// matrixErrorf wraps an underlying error with method and index context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates an r×c zero matrix. mod == 0 disables modular reduction.
// Complexity: O(r*c).
func New(rows, cols int, mod int64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", ErrTooLarge, rows, cols, MaxCells)
	}
	if mod < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadModulus, mod)
	}

	return &Matrix{r: rows, c: cols, mod: mod, data: make([]int64, rows*cols)}, nil
}

// FromRows copies a rectangular [][]int64 into a new Matrix, reducing
// every entry by mod when mod > 0.
func FromRows(rows [][]int64, mod int64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadShape)
	}
	m, err := New(len(rows), len(rows[0]), mod)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadShape, i, len(row), m.c)
		}
		for j, v := range row {
			m.data[i*m.c+j] = m.norm(v)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int, mod int64) (*Matrix, error) {
	m, err := New(n, n, mod)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = m.norm(1)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Mod returns the modulus, 0 when arithmetic is unreduced.
func (m *Matrix) Mod() int64 { return m.mod }

// At retrieves the element at (row, col).
func (m *Matrix) At(row, col int) (int64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col), reduced by the modulus.
func (m *Matrix) Set(row, col int, v int64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return matrixErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = m.norm(v)

	return nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{r: m.r, c: m.c, mod: m.mod, data: append([]int64(nil), m.data...)}
}

// ToRows returns the entries as a fresh [][]int64.
func (m *Matrix) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = append([]int64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Equal reports whether a and b have the same shape, modulus and entries.
func Equal(a, b *Matrix) bool {
	if a.r != b.r || a.c != b.c || a.mod != b.mod {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// norm maps v into [0, mod) when a modulus is set.
func (m *Matrix) norm(v int64) int64 {
	if m.mod == 0 {
		return v
	}
	v %= m.mod
	if v < 0 {
		v += m.mod
	}

	return v
}

// add returns a+b for normalized operands.
func (m *Matrix) add(a, b int64) int64 {
	if m.mod == 0 {
		return a + b
	}

	return int64((uint64(a) + uint64(b)) % uint64(m.mod))
}

// mul returns a·b for normalized operands using a 128-bit product.
func (m *Matrix) mul(a, b int64) int64 {
	if m.mod == 0 {
		return a * b
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))

	return int64(bits.Rem64(hi, lo, uint64(m.mod)))
}
