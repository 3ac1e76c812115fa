// SPDX-License-Identifier: MIT

package bits

import "errors"

// MaxItems bounds the number of elements in every subset DP.
const MaxItems = 20

var (
	// ErrTooFew indicates fewer than two codes for a pairwise distance.
	ErrTooFew = errors.New("bits: need at least two values")

	// ErrTooLarge indicates more than MaxItems elements.
	ErrTooLarge = errors.New("bits: too many items")

	// ErrRagged indicates price rows of different lengths.
	ErrRagged = errors.New("bits: rows have different lengths")

	// ErrInfeasible indicates fewer days than products.
	ErrInfeasible = errors.New("bits: no feasible selection")

	// ErrTooHeavy indicates a person heavier than the elevator capacity.
	ErrTooHeavy = errors.New("bits: weight exceeds capacity")

	// ErrNotPowerOfTwo indicates a SumOverSubsets table whose length is not 2^n.
	ErrNotPowerOfTwo = errors.New("bits: length is not a power of two")

	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("bits: graph is nil")
)
