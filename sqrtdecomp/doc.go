// SPDX-License-Identifier: MIT

// Package sqrtdecomp implements square root techniques.
//
// Blocks splits an array into about √n blocks of about √n elements, which
// gives O(1) point updates and O(√n) range sums.
//
// Mo answers offline range queries by reordering them so that a sliding
// window [l, r] moves O(n√n) steps in total; the caller supplies the
// window operations.
package sqrtdecomp
