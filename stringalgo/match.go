// SPDX-License-Identifier: MIT

package stringalgo

import "fmt"

// ZFunction returns z where z[k] is the length of the longest common
// prefix of s and s[k:]. By convention z[0] = 0.
//
// Steps:
//  1. Keep the rightmost match window [x, y) found so far.
//  2. Inside the window start from min(y-k, z[k-x]), known for free.
//  3. Extend by direct comparison and move the window if it grew.
//
// Complexity: O(n).
func ZFunction(s string) []int {
	n := len(s)
	z := make([]int, n)
	x, y := 0, 0
	for k := 1; k < n; k++ {
		if k < y {
			z[k] = min(y-k, z[k-x])
		}
		for k+z[k] < n && s[z[k]] == s[k+z[k]] {
			z[k]++
		}
		if k+z[k] > y {
			x, y = k, k+z[k]
		}
	}

	return z
}

// PrefixFunction returns π where π[i] is the length of the longest proper
// prefix of s[:i+1] that is also its suffix.
// Complexity: O(n).
func PrefixFunction(s string) []int {
	pi := make([]int, len(s))
	for i := 1; i < len(s); i++ {
		k := pi[i-1]
		for k > 0 && s[i] != s[k] {
			k = pi[k-1]
		}
		if s[i] == s[k] {
			k++
		}
		pi[i] = k
	}

	return pi
}

// FindAll returns the start offsets of every occurrence of pattern in
// text, overlapping ones included, in increasing order.
//
// It runs the Z-algorithm on pattern+"#"+text. The separator only needs
// to keep a match from crossing into the pattern, which the length check
// guarantees for any byte.
//
// Returns ErrEmptyPattern for an empty pattern.
// Complexity: O(len(pattern) + len(text)).
func FindAll(text, pattern string) ([]int, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	m := len(pattern)
	z := ZFunction(pattern + "#" + text)
	var hits []int
	for k := m + 1; k < len(z); k++ {
		if z[k] >= m {
			hits = append(hits, k-m-1)
		}
	}

	return hits, nil
}

// CountOccurrences returns how many times pattern occurs in text using
// the prefix function, as a cross-check for FindAll.
func CountOccurrences(text, pattern string) (int, error) {
	if pattern == "" {
		return 0, ErrEmptyPattern
	}
	pi := PrefixFunction(pattern)
	count, k := 0, 0
	for i := 0; i < len(text); i++ {
		for k > 0 && (k == len(pattern) || text[i] != pattern[k]) {
			k = pi[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			count++
		}
	}

	return count, nil
}

// MinimalRotation returns the offset r such that s[r:]+s[:r] is the
// lexicographically smallest rotation of s; ties pick the smallest r.
// An empty string yields 0.
//
// Complexity: O(n) (Booth's two-candidate scan).
func MinimalRotation(s string) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	i, j, k := 0, 1, 0
	for i < n && j < n && k < n {
		a, b := s[(i+k)%n], s[(j+k)%n]
		switch {
		case a == b:
			k++
			continue
		case a > b:
			i += k + 1
		default:
			j += k + 1
		}
		if i == j {
			j++
		}
		k = 0
	}

	return min(i, j)
}

// Rotate returns s[r:]+s[:r].
func Rotate(s string, r int) (string, error) {
	if r < 0 || r > len(s) {
		return "", fmt.Errorf("%w: rotation %d of %d", ErrBadRange, r, len(s))
	}

	return s[r:] + s[:r], nil
}
