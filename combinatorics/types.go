// SPDX-License-Identifier: MIT

package combinatorics

import (
	"errors"
	"math"
	"math/bits"
)

const (
	// MaxPascalRow is the last row of Pascal's triangle that fits in int64.
	MaxPascalRow = 66

	// MaxFactorials bounds the table size of NewFactorials.
	MaxFactorials = 1 << 24
)

var (
	// ErrNegative indicates a negative count.
	ErrNegative = errors.New("combinatorics: argument must be non-negative")

	// ErrOverflow indicates an exact result larger than int64.
	ErrOverflow = errors.New("combinatorics: result overflows int64")

	// ErrBadModulus indicates a modulus that is not a prime above the table size.
	ErrBadModulus = errors.New("combinatorics: modulus must be a prime larger than n")

	// ErrTooLarge indicates a factorial table above MaxFactorials.
	ErrTooLarge = errors.New("combinatorics: table too large")

	// ErrNotTree indicates edges that do not form a tree on 1..n.
	ErrNotTree = errors.New("combinatorics: edges do not form a labeled tree")

	// ErrBadCode indicates a Prüfer code with a label outside 1..len+2.
	ErrBadCode = errors.New("combinatorics: invalid Prüfer code")
)

// mulDiv returns a·b/d for an exact division, reporting false when the
// quotient does not fit in int64. The product is kept in 128 bits.
func mulDiv(a, b, d int64) (int64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(d) {
		return 0, false
	}
	q, _ := bits.Div64(hi, lo, uint64(d))
	if q > math.MaxInt64 {
		return 0, false
	}

	return int64(q), true
}

// mulExact returns a·b, reporting false on overflow. Both must be >= 0.
func mulExact(a, b int64) (int64, bool) {
	return mulDiv(a, b, 1)
}

// mulMod returns a·b mod m for a, b in [0, m) and m > 0.
func mulMod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))

	return int64(bits.Rem64(hi, lo, uint64(m)))
}
