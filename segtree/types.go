// SPDX-License-Identifier: MIT

package segtree

import (
	"errors"
	"fmt"
)

// MaxCells2D bounds n·m for NewTree2D.
const MaxCells2D = 1 << 24

var (
	// ErrIndexOutOfRange is returned for an index outside the tree.
	ErrIndexOutOfRange = errors.New("segtree: index out of range")

	// ErrEmptyRange is returned when a range has a > b.
	ErrEmptyRange = errors.New("segtree: empty range")

	// ErrBadSize is returned for a non-positive dimension.
	ErrBadSize = errors.New("segtree: size must be positive")

	// ErrTooLarge is returned when a 2D tree would exceed MaxCells2D.
	ErrTooLarge = errors.New("segtree: grid too large")

	// ErrUnknownVersion is returned for a Persistent version that was never created.
	ErrUnknownVersion = errors.New("segtree: unknown version")
)

func checkRange[I int | int64](a, b, n I) error {
	if a > b {
		return fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, a, b)
	}
	if a < 0 || b >= n {
		return fmt.Errorf("%w: [%d, %d] with length %d", ErrIndexOutOfRange, a, b, n)
	}

	return nil
}

func checkIndex[I int | int64](k, n I) error {
	if k < 0 || k >= n {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, k, n)
	}

	return nil
}
