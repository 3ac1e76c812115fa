// SPDX-License-Identifier: MIT

package bits

import "math/bits"

// Hamming returns the number of positions where a and b differ.
func Hamming(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// MinHammingDistance returns the minimum Hamming distance between two of
// the given codes. Each pair costs one XOR and one population count.
//
// Complexity: O(n²).
func MinHammingDistance(codes []uint64) (int, error) {
	if len(codes) < 2 {
		return 0, ErrTooFew
	}
	best := 64
	for i := range codes {
		for j := i + 1; j < len(codes); j++ {
			best = min(best, Hamming(codes[i], codes[j]))
		}
	}

	return best, nil
}
