// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cphb/builder"
	"github.com/katalvlaran/cphb/core"
)

// genEdge and genGraph mirror the graph input read by the graph solvers.
type genEdge struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight,omitempty" json:"weight,omitempty"`
}

type genGraph struct {
	Directed bool      `yaml:"directed,omitempty" json:"directed,omitempty"`
	Weighted bool      `yaml:"weighted,omitempty" json:"weighted,omitempty"`
	Vertices []string  `yaml:"vertices" json:"vertices"`
	Edges    []genEdge `yaml:"edges" json:"edges"`
}

type genFlags struct {
	n, m      int
	p         float64
	seed      int64
	directed  bool
	minWeight int64
	maxWeight int64
}

func (f genFlags) constructor(kind string) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "bipartite":
		return builder.CompleteBipartite(f.n, f.m), nil
	case "grid":
		return builder.Grid(f.n, f.m), nil
	case "tree":
		return builder.RandomTree(f.n), nil
	case "sparse":
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", kind)
	}
}

func newGenCmd(a *app) *cobra.Command {
	f := genFlags{}
	cmd := &cobra.Command{
		Use:       "gen <path|cycle|star|complete|bipartite|grid|tree|sparse>",
		Short:     "Generate a graph in solver input form",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"path", "cycle", "star", "complete", "bipartite", "grid", "tree", "sparse"},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := f.build(args[0], cmd.Flags().Changed("max-weight"))
			if err != nil {
				return err
			}

			return a.encode(cmd.OutOrStdout(), toGenGraph(g))
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.n, "n", "n", 5, "Vertex count (rows for grid, left side for bipartite)")
	fl.IntVarP(&f.m, "m", "m", 1, "Columns for grid, right side for bipartite")
	fl.Float64VarP(&f.p, "p", "p", 0.5, "Edge probability for sparse")
	fl.Int64Var(&f.seed, "seed", 1, "Random seed for tree, sparse and weights")
	fl.BoolVar(&f.directed, "directed", false, "Generate a directed graph")
	fl.Int64Var(&f.minWeight, "min-weight", 1, "Smallest random edge weight")
	fl.Int64Var(&f.maxWeight, "max-weight", 1, "Largest random edge weight; setting it makes the graph weighted")

	return cmd
}

func (f genFlags) build(kind string, weighted bool) (*core.Graph, error) {
	con, err := f.constructor(kind)
	if err != nil {
		return nil, err
	}
	gopts := []core.GraphOption{core.WithDirected(f.directed)}
	bopts := []builder.BuilderOption{builder.WithSeed(f.seed)}
	if weighted {
		gopts = append(gopts, core.WithWeighted())
		bopts = append(bopts, builder.WithWeightRange(f.minWeight, f.maxWeight))
	}

	return builder.BuildGraph(gopts, bopts, con)
}

func toGenGraph(g *core.Graph) genGraph {
	out := genGraph{
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Vertices: g.Vertices(),
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, genEdge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out
}
