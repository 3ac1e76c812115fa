// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/builder"
	"github.com/katalvlaran/cphb/core"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithIDFn(builder.ExcelColumnIDFn)},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s->%s ", e.From, e.To)
	}
	fmt.Println()
	// Output: A->B B->C C->D D->A
}
