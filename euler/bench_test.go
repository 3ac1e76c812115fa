// SPDX-License-Identifier: MIT

package euler_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/euler"
)

// BenchmarkEulerianCircuit_Ring walks a ring with chords i -> i+2.
func BenchmarkEulerianCircuit_Ring(b *testing.B) {
	const n = 1 << 12
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n), 0)
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+2)%n), 0)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := euler.EulerianCircuit(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestHamiltonianCycle_n12(b *testing.B) {
	const n = 12
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), int64((i*7+j*13)%17+1))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := euler.ShortestHamiltonianCycle(g); err != nil {
			b.Fatal(err)
		}
	}
}
