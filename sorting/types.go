// SPDX-License-Identifier: MIT

package sorting

import "errors"

// MaxCountingRange bounds maxValue in CountingSort, which allocates one
// counter per key.
const MaxCountingRange = 1 << 25

var (
	// ErrValueOutOfRange indicates a CountingSort key outside [0, maxValue].
	ErrValueOutOfRange = errors.New("sorting: value out of range")

	// ErrTooLarge indicates a CountingSort key range above MaxCountingRange.
	ErrTooLarge = errors.New("sorting: key range too large")

	// ErrBadRange indicates a search range with lo > hi.
	ErrBadRange = errors.New("sorting: invalid search range")

	// ErrBadRank indicates a QuickSelect rank outside [0, len(xs)).
	ErrBadRank = errors.New("sorting: rank out of range")

	// ErrNilRand indicates QuickSelect was called without a random source.
	ErrNilRand = errors.New("sorting: nil random source")
)
