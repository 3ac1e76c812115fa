// SPDX-License-Identifier: MIT

package dp

import "fmt"

// DiceSumDistribution returns p where p[s] is the probability that the sum
// of dice fair dice with faces 1..faces equals s, for s in [0, dice·faces].
//
// The distribution for k dice is the distribution for k-1 dice spread over
// every face value: p_k[s] = (p_{k-1}[s-1] + ... + p_{k-1}[s-faces]) / faces.
//
// Complexity: O(dice² · faces²).
func DiceSumDistribution(dice, faces int) ([]float64, error) {
	if dice < 0 {
		return nil, fmt.Errorf("%w: %d dice", ErrNegative, dice)
	}
	if faces <= 0 {
		return nil, fmt.Errorf("%w: %d faces", ErrNonPositive, faces)
	}
	if !fits(dice, faces) {
		return nil, fmt.Errorf("%w: %d dice × %d faces", ErrTooLarge, dice, faces)
	}

	p := make([]float64, dice*faces+1)
	p[0] = 1
	for k := 1; k <= dice; k++ {
		q := make([]float64, len(p))
		for s := k; s <= k*faces; s++ {
			for f := 1; f <= faces && f <= s; f++ {
				q[s] += p[s-f]
			}
			q[s] /= float64(faces)
		}
		p = q
	}

	return p, nil
}
