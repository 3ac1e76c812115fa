// SPDX-License-Identifier: MIT

package rangeq

import (
	"errors"
	"fmt"
)

// MaxLen bounds the length given to NewFenwick and NewRangeFenwick.
const MaxLen = 1 << 26

var (
	// ErrBadLength is returned for a negative length or one above MaxLen.
	ErrBadLength = errors.New("rangeq: invalid length")

	// ErrIndexOutOfRange is returned for an index outside the array.
	ErrIndexOutOfRange = errors.New("rangeq: index out of range")

	// ErrEmptyRange is returned when a range has a > b.
	ErrEmptyRange = errors.New("rangeq: empty range")

	// ErrRagged is returned when a 2D input has rows of different length.
	ErrRagged = errors.New("rangeq: rows differ in length")
)

// checkRange validates 0 <= a <= b < n.
func checkRange(a, b, n int) error {
	if a > b {
		return fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, a, b)
	}
	if a < 0 || b >= n {
		return fmt.Errorf("%w: [%d, %d] with length %d", ErrIndexOutOfRange, a, b, n)
	}

	return nil
}

// checkIndex validates 0 <= k < n.
func checkIndex(k, n int) error {
	if k < 0 || k >= n {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, k, n)
	}

	return nil
}

// checkLength validates 0 <= n <= MaxLen.
func checkLength(n int) error {
	if n < 0 || n > MaxLen {
		return fmt.Errorf("%w: %d, limit %d", ErrBadLength, n, MaxLen)
	}

	return nil
}
