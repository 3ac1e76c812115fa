// SPDX-License-Identifier: MIT

// Package games analyzes two-player impartial games with perfect
// information: both players have the same moves and the player who cannot
// move loses.
//
// Nim is solved by the nim sum; the misère variant differs only when every
// heap has at most one stick. Any other impartial game reduces to nim
// through Grundy numbers, and a sum of games is won iff the XOR of their
// Grundy numbers is non-zero.
package games
