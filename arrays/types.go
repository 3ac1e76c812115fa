// SPDX-License-Identifier: MIT

package arrays

import "errors"

var (
	// ErrNonPositive indicates a value <= 0 where strictly positive input is required.
	ErrNonPositive = errors.New("arrays: value must be positive")

	// ErrBadWindow indicates a window size outside [1, len(xs)].
	ErrBadWindow = errors.New("arrays: window size out of range")
)
