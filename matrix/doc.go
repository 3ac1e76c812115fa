// SPDX-License-Identifier: MIT

// Package matrix implements integer matrices for counting and
// optimization problems on graphs and recurrences.
//
// A Matrix holds int64 entries in row-major order together with an
// optional modulus. With Mod() > 0 every entry is kept in [0, mod) and
// products use 128-bit intermediates, so any modulus below 2⁶³ is safe.
// With Mod() == 0 arithmetic is plain int64 and may overflow.
//
// The package provides:
//
//   - Mul / Pow: ordinary products and fast exponentiation, O(n³ log k).
//   - MinPlusMul / MinPlusPow: the (min,+) semiring where Inf means
//     "no path"; powers give shortest walks with exactly k edges.
//   - LinearRecurrence / Fibonacci: the k-th term of a linear recurrence
//     via its companion matrix.
//   - CountPaths / ShortestFixedLength: walks of a fixed length in a
//     *core.Graph.
//   - DeterminantMod / SpanningTreeCount: Gaussian elimination over a
//     prime field and Kirchhoff's matrix-tree theorem.
//   - Freivalds: probabilistic check of A·B = C in O(n²) per round.
package matrix
