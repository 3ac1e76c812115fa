// SPDX-License-Identifier: MIT

package matching_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/matching"
)

func BenchmarkMaxBipartite(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(1))
	g := core.NewGraph()
	left := make([]string, n)
	for i := 0; i < n; i++ {
		left[i] = "L" + strconv.Itoa(i)
		for k := 0; k < 4; k++ {
			_, _ = g.AddEdge(left[i], "R"+strconv.Itoa(r.Intn(n)), 0)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matching.MaxBipartite(g, left); err != nil {
			b.Fatal(err)
		}
	}
}
