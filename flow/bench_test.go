// SPDX-License-Identifier: MIT

package flow_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/cphb/builder"
	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/flow"
)

func BenchmarkMaxFlow(b *testing.B) {
	algorithms := []struct {
		name string
		run  maxFlowFunc
	}{
		{"FordFulkerson", flow.FordFulkerson},
		{"EdmondsKarp", flow.EdmondsKarp},
		{"Dinic", flow.Dinic},
	}
	sizes := []struct {
		n int
		p float64
	}{
		{200, 0.05},
		{1000, 0.01},
	}

	for _, size := range sizes {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(int64(size.n)), builder.WithWeightRange(1, 50)},
			builder.RandomSparse(size.n, size.p),
		)
		if err != nil {
			b.Fatal(err)
		}
		sink := strconv.Itoa(size.n - 1)
		for _, alg := range algorithms {
			b.Run(alg.name+"/"+strconv.Itoa(size.n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _, _ = alg.run(g, "0", sink, flow.DefaultOptions())
				}
			})
		}
	}
}

func BenchmarkEdgeDisjointPaths_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flow.EdgeDisjointPaths(g, "0,0", "29,29", flow.DefaultOptions())
	}
}
