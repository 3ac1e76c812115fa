// SPDX-License-Identifier: MIT

// Package stringalgo implements classical string processing: tries,
// polynomial hashing, the Z-algorithm, prefix functions, suffix arrays
// and the Kasai LCP array.
//
// Strings are treated as byte sequences. Positions are 0-based byte
// offsets and substrings are half-open ranges s[a:b].
package stringalgo
