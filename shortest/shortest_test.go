// SPDX-License-Identifier: MIT

package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/shortest"
)

type arc struct {
	u, v string
	w    int64
}

func directed(arcs ...arc) *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	for _, a := range arcs {
		_, _ = g.AddEdge(a.u, a.v, a.w)
	}

	return g
}

// negativeEdgeGraph has a negative arc but no negative cycle.
func negativeEdgeGraph() *core.Graph {
	return directed(
		arc{"1", "2", 2}, arc{"1", "3", 3}, arc{"1", "4", 7}, arc{"2", "4", 3},
		arc{"2", "5", 5}, arc{"3", "4", -2}, arc{"4", "5", 2},
	)
}

// cycleGraph contains the negative cycle 2→3→4→2 of weight -2.
func cycleGraph() *core.Graph {
	return directed(arc{"1", "2", 3}, arc{"2", "3", 2}, arc{"3", "4", 1}, arc{"4", "2", -5})
}

type singleSource func(*core.Graph, string) (*shortest.Result, error)

func TestSingleSource(t *testing.T) {
	for name, run := range map[string]singleSource{
		"BellmanFord": shortest.BellmanFord,
		"SPFA":        shortest.SPFA,
	} {
		t.Run(name, func(t *testing.T) {
			g := negativeEdgeGraph()
			_ = g.AddVertex("6")

			res, err := run(g, "1")
			require.NoError(t, err)
			assert.Equal(t, map[string]int64{
				"1": 0, "2": 2, "3": 3, "4": 1, "5": 3, "6": shortest.Inf,
			}, res.Dist)

			path, err := res.PathTo("5")
			require.NoError(t, err)
			assert.Equal(t, []string{"1", "3", "4", "5"}, path)

			path, err = res.PathTo("1")
			require.NoError(t, err)
			assert.Equal(t, []string{"1"}, path)

			_, err = res.PathTo("6")
			assert.ErrorIs(t, err, shortest.ErrNoPath)
			_, err = res.PathTo("zz")
			assert.ErrorIs(t, err, shortest.ErrVertexNotFound)
		})

		t.Run(name+"/NegativeCycle", func(t *testing.T) {
			_, err := run(cycleGraph(), "1")
			assert.ErrorIs(t, err, shortest.ErrNegativeCycle)
		})

		t.Run(name+"/UnreachableCycleIgnored", func(t *testing.T) {
			g := cycleGraph()
			_ = g.AddVertex("0")
			res, err := run(g, "0")
			require.NoError(t, err)
			assert.Equal(t, shortest.Inf, res.Dist["2"])
		})

		t.Run(name+"/NegativeSelfLoop", func(t *testing.T) {
			_, err := run(directed(arc{"a", "a", -1}), "a")
			assert.ErrorIs(t, err, shortest.ErrNegativeCycle)
		})

		t.Run(name+"/NegativeUndirectedEdge", func(t *testing.T) {
			g := core.NewGraph(core.WithWeighted())
			_, _ = g.AddEdge("a", "b", -1)
			_, err := run(g, "a")
			assert.ErrorIs(t, err, shortest.ErrNegativeCycle)
		})

		t.Run(name+"/Errors", func(t *testing.T) {
			_, err := run(nil, "a")
			assert.ErrorIs(t, err, shortest.ErrGraphNil)
			_, err = run(negativeEdgeGraph(), "zz")
			assert.ErrorIs(t, err, shortest.ErrSourceNotFound)
		})
	}
}

func TestNegativeCycle(t *testing.T) {
	cycle, ok, err := shortest.NegativeCycle(cycleGraph())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"4", "2", "3", "4"}, cycle)

	_, ok, err = shortest.NegativeCycle(negativeEdgeGraph())
	require.NoError(t, err)
	assert.False(t, ok)

	cycle, ok, err = shortest.NegativeCycle(directed(arc{"x", "x", -3}))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "x"}, cycle)

	_, ok, err = shortest.NegativeCycle(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = shortest.NegativeCycle(nil)
	assert.ErrorIs(t, err, shortest.ErrGraphNil)
}

func bookUndirected() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for _, a := range []arc{
		{"1", "2", 5}, {"1", "4", 9}, {"1", "5", 1},
		{"2", "3", 2}, {"3", "4", 7}, {"4", "5", 2},
	} {
		_, _ = g.AddEdge(a.u, a.v, a.w)
	}

	return g
}

func TestFloydWarshall(t *testing.T) {
	ap, err := shortest.FloydWarshall(bookUndirected())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ap.Vertices())
	assert.Equal(t, [][]int64{
		{0, 5, 7, 3, 1},
		{5, 0, 2, 8, 6},
		{7, 2, 0, 7, 8},
		{3, 8, 7, 0, 2},
		{1, 6, 8, 2, 0},
	}, ap.Matrix())

	d, err := ap.Dist("3", "5")
	require.NoError(t, err)
	assert.Equal(t, int64(8), d)

	path, err := ap.Path("3", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1", "5"}, path)

	path, err = ap.Path("4", "4")
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, path)

	_, err = ap.Dist("1", "zz")
	assert.ErrorIs(t, err, shortest.ErrVertexNotFound)
}

func TestFloydWarshall_Unreachable(t *testing.T) {
	g := directed(arc{"a", "b", 4})
	ap, err := shortest.FloydWarshall(g)
	require.NoError(t, err)

	d, err := ap.Dist("b", "a")
	require.NoError(t, err)
	assert.Equal(t, shortest.Inf, d)

	_, err = ap.Path("b", "a")
	assert.ErrorIs(t, err, shortest.ErrNoPath)
}

func TestFloydWarshall_AgreesWithBellmanFord(t *testing.T) {
	g := negativeEdgeGraph()
	ap, err := shortest.FloydWarshall(g)
	require.NoError(t, err)

	for _, src := range g.Vertices() {
		res, err := shortest.BellmanFord(g, src)
		require.NoError(t, err)
		for dst, want := range res.Dist {
			got, err := ap.Dist(src, dst)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s→%s", src, dst)
		}
	}
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	_, err := shortest.FloydWarshall(cycleGraph())
	assert.ErrorIs(t, err, shortest.ErrNegativeCycle)

	_, err = shortest.FloydWarshall(nil)
	assert.ErrorIs(t, err, shortest.ErrGraphNil)
}

func TestSPFA_AgreesWithBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := randomDAG(60, 300, seed)
		bf, err := shortest.BellmanFord(g, "0")
		require.NoError(t, err)
		sp, err := shortest.SPFA(g, "0")
		require.NoError(t, err)
		assert.Equal(t, bf.Dist, sp.Dist, "seed %d", seed)
	}
}
