// SPDX-License-Identifier: MIT

package complete_test

import (
	"testing"

	"github.com/katalvlaran/cphb/complete"
)

func BenchmarkNQueens(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = complete.NQueens(10)
	}
}

func BenchmarkSubsetSumMeetInMiddle(b *testing.B) {
	xs := make([]int64, 32)
	for i := range xs {
		xs[i] = int64(i*i*7 + 3)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = complete.SubsetSumMeetInMiddle(xs, 1)
	}
}
