// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor or weight range
	// used without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrOptionViolation indicates a meaningless option value, such as a nil
	// ID function or an empty weight range.
	ErrOptionViolation = errors.New("builder: invalid option value")

	// ErrConstructFailed indicates a nil constructor passed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
