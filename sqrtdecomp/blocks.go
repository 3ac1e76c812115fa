// SPDX-License-Identifier: MIT

package sqrtdecomp

import (
	"fmt"
	"math"
)

// Blocks keeps an array together with the sum of each block.
type Blocks struct {
	xs    []int64
	sums  []int64
	width int
}

// NewBlocks builds the structure over a copy of xs.
func NewBlocks(xs []int64) *Blocks {
	width := max(1, int(math.Ceil(math.Sqrt(float64(len(xs))))))
	b := &Blocks{
		xs:    append([]int64(nil), xs...),
		sums:  make([]int64, (len(xs)+width-1)/width),
		width: width,
	}
	for k, x := range xs {
		b.sums[k/width] += x
	}

	return b
}

// Len returns the number of elements.
func (b *Blocks) Len() int { return len(b.xs) }

// BlockSize returns the number of elements per block.
func (b *Blocks) BlockSize() int { return b.width }

// Set assigns x to element k in O(1).
func (b *Blocks) Set(k int, x int64) error {
	if k < 0 || k >= len(b.xs) {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, k, len(b.xs))
	}
	b.sums[k/b.width] += x - b.xs[k]
	b.xs[k] = x

	return nil
}

// Sum returns the sum of [lo, hi]: partial blocks element by element, whole
// blocks by their stored sums.
func (b *Blocks) Sum(lo, hi int) (int64, error) {
	if err := checkRange(lo, hi, len(b.xs)); err != nil {
		return 0, err
	}
	var s int64
	k := lo
	for k <= hi && k%b.width != 0 {
		s += b.xs[k]
		k++
	}
	for k+b.width-1 <= hi {
		s += b.sums[k/b.width]
		k += b.width
	}
	for ; k <= hi; k++ {
		s += b.xs[k]
	}

	return s, nil
}
