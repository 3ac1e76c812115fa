// SPDX-License-Identifier: MIT

package numtheory

import "errors"

// MaxSieve bounds the n of Sieve and PhiSieve, which allocate n+1 entries.
const MaxSieve = 1 << 24

var (
	// ErrNonPositive indicates an argument that must be >= 1.
	ErrNonPositive = errors.New("numtheory: argument must be positive")

	// ErrNegative indicates a negative exponent or bound.
	ErrNegative = errors.New("numtheory: argument must be non-negative")

	// ErrBadModulus indicates a modulus <= 0.
	ErrBadModulus = errors.New("numtheory: modulus must be positive")

	// ErrNoInverse indicates gcd(x, m) != 1.
	ErrNoInverse = errors.New("numtheory: no modular inverse")

	// ErrNoSolution indicates an inconsistent system of congruences.
	ErrNoSolution = errors.New("numtheory: congruences have no solution")

	// ErrLengthMismatch indicates remainders and moduli of different lengths.
	ErrLengthMismatch = errors.New("numtheory: remainders and moduli differ in length")

	// ErrTooLarge indicates a sieve bound above MaxSieve.
	ErrTooLarge = errors.New("numtheory: sieve bound too large")

	// ErrOverflow indicates a result that does not fit in int64.
	ErrOverflow = errors.New("numtheory: result overflows int64")
)
