// SPDX-License-Identifier: MIT

package flow_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/flow"
)

// bottleneckGraph has two edge-disjoint s→t routes that both pass through c.
func bottleneckGraph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{
		{"s", "a"}, {"s", "b"}, {"a", "c"}, {"b", "c"},
		{"c", "d"}, {"c", "e"}, {"d", "t"}, {"e", "t"},
	} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	return g
}

func TestEdgeDisjointPaths(t *testing.T) {
	paths, err := flow.EdgeDisjointPaths(bottleneckGraph(), "s", "t", flow.DefaultOptions())
	require.NoError(t, err)

	want := [][]string{{"s", "a", "c", "d", "t"}, {"s", "b", "c", "e", "t"}}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestVertexDisjointPaths(t *testing.T) {
	paths, err := flow.VertexDisjointPaths(bottleneckGraph(), "s", "t", flow.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"s", "a", "c", "d", "t"}, paths[0])
}

func TestDisjointPaths_Undirected(t *testing.T) {
	// square s-a-t-b-s plus diagonal a-b
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "s"}, {"a", "t"}, {"b", "t"}, {"s", "b"}, {"a", "b"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	edgePaths, err := flow.EdgeDisjointPaths(g, "s", "t", flow.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, edgePaths, 2)

	vertexPaths, err := flow.VertexDisjointPaths(g, "s", "t", flow.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, vertexPaths, 2)

	used := map[string]int{}
	for _, p := range vertexPaths {
		assert.Equal(t, "s", p[0])
		assert.Equal(t, "t", p[len(p)-1])
		for _, v := range p[1 : len(p)-1] {
			used[v]++
		}
	}
	for v, n := range used {
		assert.Equal(t, 1, n, "inner vertex %s reused", v)
	}
}

func TestDisjointPaths_DirectEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, _ = g.AddEdge("s", "t", 0)
	_, _ = g.AddEdge("s", "t", 0)

	edgePaths, err := flow.EdgeDisjointPaths(g, "s", "t", flow.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"s", "t"}, {"s", "t"}}, edgePaths)

	vertexPaths, err := flow.VertexDisjointPaths(g, "s", "t", flow.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"s", "t"}}, vertexPaths)
}

func TestDisjointPaths_Errors(t *testing.T) {
	g := bottleneckGraph()
	_, err := flow.EdgeDisjointPaths(g, "s", "s", flow.DefaultOptions())
	assert.ErrorIs(t, err, flow.ErrSourceIsSink)
	_, err = flow.VertexDisjointPaths(g, "zz", "t", flow.DefaultOptions())
	assert.ErrorIs(t, err, flow.ErrSourceNotFound)
}
