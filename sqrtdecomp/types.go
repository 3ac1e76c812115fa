// SPDX-License-Identifier: MIT

package sqrtdecomp

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for an index outside the array.
	ErrIndexOutOfRange = errors.New("sqrtdecomp: index out of range")

	// ErrEmptyRange is returned when a range has a > b.
	ErrEmptyRange = errors.New("sqrtdecomp: empty range")

	// ErrNilCallback is returned when Mo lacks a window operation.
	ErrNilCallback = errors.New("sqrtdecomp: nil callback")
)

// Query is an inclusive range [L, R] for Mo's algorithm.
type Query struct {
	L, R int
}

func checkRange(a, b, n int) error {
	if a > b {
		return fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, a, b)
	}
	if a < 0 || b >= n {
		return fmt.Errorf("%w: [%d, %d] with length %d", ErrIndexOutOfRange, a, b, n)
	}

	return nil
}
