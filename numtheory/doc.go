// SPDX-License-Identifier: MIT

// Package numtheory implements integer algorithms: primality, factoring,
// sieves, divisor functions, Euclid's algorithm, modular arithmetic, the
// Chinese remainder theorem and a few classical theorems.
//
// Modular products go through math/bits.Mul64, so every modulus up to
// 2^63-1 is safe from overflow. Results modulo m are normalized to [0, m).
package numtheory
