// SPDX-License-Identifier: MIT

package bits_test

import (
	"testing"

	"github.com/katalvlaran/cphb/bits"
)

func BenchmarkElevatorRides(b *testing.B) {
	weights := make([]int64, 16)
	for i := range weights {
		weights[i] = int64(i*37%50 + 10)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bits.ElevatorRides(weights, 100)
	}
}

func BenchmarkSumOverSubsets(b *testing.B) {
	values := make([]int64, 1<<16)
	for i := range values {
		values[i] = int64(i % 7)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bits.SumOverSubsets(values)
	}
}
