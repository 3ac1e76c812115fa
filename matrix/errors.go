// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..."; callers match with errors.Is.
var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0)
	// or input rows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrTooLarge is returned when rows·cols exceeds MaxCells.
	ErrTooLarge = errors.New("matrix: too many cells")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrModulusMismatch indicates operands carrying different moduli.
	ErrModulusMismatch = errors.New("matrix: modulus mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadModulus is returned for a negative modulus, or when a prime
	// modulus is required and a pivot has no inverse.
	ErrBadModulus = errors.New("matrix: invalid modulus")

	// ErrNegativeExponent is returned for powers and terms with k < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrBadRecurrence is returned when coefficients and initial terms
	// are empty or differ in length.
	ErrBadRecurrence = errors.New("matrix: coefficients and initial terms must have equal non-zero length")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates a vertex ID missing from a GraphMatrix.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrDirectedGraph is returned by SpanningTreeCount for directed edges.
	ErrDirectedGraph = errors.New("matrix: directed edges not supported")
)
