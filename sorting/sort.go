// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"fmt"
)

// BubbleSort sorts xs in place by repeatedly swapping adjacent elements
// that are out of order. Every swap removes exactly one inversion, so the
// returned swap count equals Inversions(xs) of the original input.
//
// Complexity: O(n²).
func BubbleSort[T cmp.Ordered](xs []T) int64 {
	var swaps int64
	for i := 0; i < len(xs); i++ {
		done := true
		for j := 0; j < len(xs)-1-i; j++ {
			if xs[j] > xs[j+1] {
				xs[j], xs[j+1] = xs[j+1], xs[j]
				swaps++
				done = false
			}
		}
		if done {
			break
		}
	}

	return swaps
}

// MergeSort sorts xs in place. Equal elements keep their relative order.
//
// Complexity: O(n log n) time, O(n) extra memory.
func MergeSort[T cmp.Ordered](xs []T) {
	buf := make([]T, len(xs))
	mergeSort(xs, buf)
}

// Inversions returns the number of pairs i < j with xs[i] > xs[j].
// xs is not modified.
//
// Complexity: O(n log n).
func Inversions[T cmp.Ordered](xs []T) int64 {
	work := append([]T(nil), xs...)

	return mergeSort(work, make([]T, len(work)))
}

// mergeSort sorts xs using buf as scratch space and returns the number of
// inversions it removed.
func mergeSort[T cmp.Ordered](xs, buf []T) int64 {
	if len(xs) < 2 {
		return 0
	}
	mid := len(xs) / 2
	inv := mergeSort(xs[:mid], buf[:mid]) + mergeSort(xs[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(xs) {
		if xs[j] < xs[i] {
			// xs[j] jumps over every element left in the first half.
			inv += int64(mid - i)
			buf[k] = xs[j]
			j++
		} else {
			buf[k] = xs[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], xs[i:mid])
	copy(buf[k:], xs[j:])
	copy(xs, buf[:len(xs)])

	return inv
}

// CountingSort returns the values of xs in ascending order. Every value
// must lie in [0, maxValue], and maxValue is bounded by MaxCountingRange.
//
// Complexity: O(n + maxValue).
func CountingSort(xs []int, maxValue int) ([]int, error) {
	if maxValue < 0 {
		return nil, fmt.Errorf("%w: maxValue %d", ErrValueOutOfRange, maxValue)
	}
	if maxValue > MaxCountingRange {
		return nil, fmt.Errorf("%w: maxValue %d, limit %d", ErrTooLarge, maxValue, MaxCountingRange)
	}
	count := make([]int, maxValue+1)
	for i, x := range xs {
		if x < 0 || x > maxValue {
			return nil, fmt.Errorf("%w: xs[%d] = %d not in [0, %d]", ErrValueOutOfRange, i, x, maxValue)
		}
		count[x]++
	}

	res := make([]int, 0, len(xs))
	for v, c := range count {
		for ; c > 0; c-- {
			res = append(res, v)
		}
	}

	return res, nil
}
