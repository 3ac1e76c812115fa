// SPDX-License-Identifier: MIT

// Package combinatorics counts combinations, arrangements and labeled
// structures.
//
// Exact results are int64 and report ErrOverflow instead of wrapping.
// Counts that grow too fast for exact arithmetic have a modular variant:
// Factorials precomputes n! and its inverse modulo a prime, after which
// every binomial coefficient costs O(1).
//
// Prüfer codes use vertex labels 1..n, as in the usual presentation.
package combinatorics
