// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/cphb/bfs"
	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/dfs"
	"github.com/katalvlaran/cphb/dijkstra"
	"github.com/katalvlaran/cphb/euler"
	"github.com/katalvlaran/cphb/flow"
	"github.com/katalvlaran/cphb/matching"
	"github.com/katalvlaran/cphb/matrix"
	"github.com/katalvlaran/cphb/prim_kruskal"
	"github.com/katalvlaran/cphb/scc"
	"github.com/katalvlaran/cphb/shortest"
	"github.com/katalvlaran/cphb/tree"
)

type edgeInput struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// graphInput is the common graph description:
//
//	directed: true
//	vertices: [A, B]      # optional, for isolated vertices
//	edges:
//	  - {from: A, to: B, weight: 3}
type graphInput struct {
	Directed bool        `yaml:"directed"`
	Weighted bool        `yaml:"weighted"`
	Vertices []string    `yaml:"vertices"`
	Edges    []edgeInput `yaml:"edges"`
	Source   string      `yaml:"source"`
	Sink     string      `yaml:"sink"`
	Root     string      `yaml:"root"`
	Left     []string    `yaml:"left"`
}

// graph builds a core.Graph. Weighted graphs are used when the input asks
// for it, when any weight is non-zero, or when the solver needs weights.
func (in graphInput) graph(needWeights bool) (*core.Graph, error) {
	weighted := in.Weighted || needWeights
	for _, e := range in.Edges {
		weighted = weighted || e.Weight != 0
	}
	opts := []core.GraphOption{core.WithDirected(in.Directed), core.WithMultiEdges(), core.WithLoops()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, v := range in.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrBadInput, v, err)
		}
	}
	for i, e := range in.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %v", ErrBadInput, i, e.From, e.To, err)
		}
	}

	return g, nil
}

func decodeGraph(req Request, needWeights bool) (graphInput, *core.Graph, error) {
	in, err := decode[graphInput](req)
	if err != nil {
		return in, nil, err
	}
	g, err := in.graph(needWeights)

	return in, g, err
}

type traversalOutput struct {
	Order []string       `yaml:"order" json:"order"`
	Depth map[string]int `yaml:"depth,omitempty" json:"depth,omitempty"`
}

type distanceOutput struct {
	Source string           `yaml:"source" json:"source"`
	Dist   map[string]int64 `yaml:"dist" json:"dist"`
}

type weightedEdge struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight" json:"weight"`
}

type flowOutput struct {
	Value  int64          `yaml:"value" json:"value"`
	Source []string       `yaml:"source_side,omitempty" json:"source_side,omitempty"`
	Cut    []weightedEdge `yaml:"cut,omitempty" json:"cut,omitempty"`
}

func graphSolvers() []Solver {
	return []Solver{
		{Name: "bfs", Summary: "breadth-first order and depths from source", solve: solveBFS},
		{Name: "topo-sort", Summary: "topological order of a DAG", solve: solveTopoSort},
		{Name: "dijkstra", Summary: "single-source shortest paths, non-negative weights", solve: solveDijkstra},
		{Name: "bellman-ford", Summary: "single-source shortest paths with negative weights", solve: solveBellmanFord},
		{Name: "floyd-warshall", Summary: "all-pairs shortest distances", solve: solveFloydWarshall},
		{Name: "mst", Summary: "minimum spanning tree (Kruskal)", solve: solveMST},
		{Name: "scc", Summary: "strongly connected components (Kosaraju)", solve: solveSCC},
		{Name: "maxflow", Summary: "maximum flow and minimum cut (Dinic)", solve: solveMaxFlow},
		{Name: "bipartite-matching", Summary: "maximum matching from the left side", solve: solveMatching},
		{Name: "eulerian-path", Summary: "path using every edge once (Hierholzer)", solve: solveEulerianPath},
		{Name: "tree-diameter", Summary: "longest path in a tree", solve: solveTreeDiameter},
		{Name: "spanning-trees", Summary: "number of spanning trees (Kirchhoff)", solve: solveSpanningTrees},
	}
}

func solveBFS(ctx context.Context, req Request) (any, error) {
	in, g, err := decodeGraph(req, false)
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(g, in.Source, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return traversalOutput{Order: res.Order, Depth: res.Depth}, nil
}

func solveTopoSort(ctx context.Context, req Request) (any, error) {
	_, g, err := decodeGraph(req, false)
	if err != nil {
		return nil, err
	}
	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, err
	}

	return traversalOutput{Order: order}, nil
}

func solveDijkstra(_ context.Context, req Request) (any, error) {
	in, g, err := decodeGraph(req, true)
	if err != nil {
		return nil, err
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(in.Source))
	if err != nil {
		return nil, err
	}
	out := distanceOutput{Source: in.Source, Dist: make(map[string]int64, len(dist))}
	for v, d := range dist {
		if d != math.MaxInt64 {
			out.Dist[v] = d
		}
	}

	return out, nil
}

func solveBellmanFord(_ context.Context, req Request) (any, error) {
	in, g, err := decodeGraph(req, true)
	if err != nil {
		return nil, err
	}
	res, err := shortest.BellmanFord(g, in.Source)
	if err != nil {
		return nil, err
	}
	out := distanceOutput{Source: in.Source, Dist: make(map[string]int64, len(res.Dist))}
	for v, d := range res.Dist {
		if d != shortest.Inf {
			out.Dist[v] = d
		}
	}

	return out, nil
}

func solveFloydWarshall(_ context.Context, req Request) (any, error) {
	_, g, err := decodeGraph(req, true)
	if err != nil {
		return nil, err
	}
	ap, err := shortest.FloydWarshall(g)
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]int64)
	for _, u := range ap.Vertices() {
		row := make(map[string]int64)
		for _, v := range ap.Vertices() {
			if d, err := ap.Dist(u, v); err == nil && d != shortest.Inf {
				row[v] = d
			}
		}
		out[u] = row
	}

	return out, nil
}

func solveMST(_ context.Context, req Request) (any, error) {
	_, g, err := decodeGraph(req, true)
	if err != nil {
		return nil, err
	}
	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return nil, err
	}
	out := struct {
		Total int64          `yaml:"total" json:"total"`
		Edges []weightedEdge `yaml:"edges" json:"edges"`
	}{Total: total}
	for _, e := range edges {
		out.Edges = append(out.Edges, weightedEdge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out, nil
}

func solveSCC(_ context.Context, req Request) (any, error) {
	_, g, err := decodeGraph(req, false)
	if err != nil {
		return nil, err
	}

	return scc.Kosaraju(g)
}

func solveMaxFlow(ctx context.Context, req Request) (any, error) {
	in, g, err := decodeGraph(req, true)
	if err != nil {
		return nil, err
	}
	opts := flow.FlowOptions{Ctx: ctx, Logger: req.Logger}
	cut, err := flow.MinCut(g, in.Source, in.Sink, opts)
	if err != nil {
		return nil, err
	}
	out := flowOutput{Value: cut.Value, Source: cut.Source}
	for _, e := range cut.Edges {
		out.Cut = append(out.Cut, weightedEdge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out, nil
}

func solveMatching(_ context.Context, req Request) (any, error) {
	in, g, err := decodeGraph(req, false)
	if err != nil {
		return nil, err
	}
	pairs, err := matching.MaxBipartite(g, in.Left)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		out[p.Left] = p.Right
	}

	return out, nil
}

func solveEulerianPath(_ context.Context, req Request) (any, error) {
	_, g, err := decodeGraph(req, false)
	if err != nil {
		return nil, err
	}
	path, err := euler.EulerianPath(g)
	if err != nil {
		return nil, err
	}

	return traversalOutput{Order: path}, nil
}

func solveTreeDiameter(_ context.Context, req Request) (any, error) {
	in, g, err := decodeGraph(req, false)
	if err != nil {
		return nil, err
	}
	root := in.Root
	if root == "" && g.VertexCount() > 0 {
		root = g.Vertices()[0]
	}
	t, err := tree.New(g, root)
	if err != nil {
		return nil, err
	}
	length, path := t.Diameter()

	return struct {
		Length int64    `yaml:"length" json:"length"`
		Path   []string `yaml:"path" json:"path"`
	}{length, path}, nil
}

func solveSpanningTrees(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		graphInput `yaml:",inline"`
		Mod        int64 `yaml:"mod"`
	}](req)
	if err != nil {
		return nil, err
	}
	g, err := in.graph(false)
	if err != nil {
		return nil, err
	}
	mod := in.Mod
	if mod == 0 {
		mod = 1_000_000_007
	}

	return matrix.SpanningTreeCount(g, mod)
}
