// SPDX-License-Identifier: MIT

package complete

import "errors"

const (
	// MaxBitSubsets bounds SubsetsBits, which materializes 2^n subsets.
	MaxBitSubsets = 20

	// MaxQueens bounds NQueens.
	MaxQueens = 16

	// MaxMeetInMiddle bounds SubsetSumMeetInMiddle, which stores 2^(n/2) sums.
	MaxMeetInMiddle = 40
)

var (
	// ErrNegativeSize indicates a negative element count.
	ErrNegativeSize = errors.New("complete: negative size")

	// ErrTooLarge indicates an input beyond the package bounds above.
	ErrTooLarge = errors.New("complete: input too large")
)
