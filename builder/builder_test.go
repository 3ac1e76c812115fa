// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/bfs"
	"github.com/katalvlaran/cphb/builder"
	"github.com/katalvlaran/cphb/core"
)

func TestBuilders_Counts(t *testing.T) {
	tests := []struct {
		name         string
		gopts        []core.GraphOption
		ctor         builder.Constructor
		wantV, wantE int
	}{
		{"Path(5)", nil, builder.Path(5), 5, 4},
		{"Cycle(5)", nil, builder.Cycle(5), 5, 5},
		{"Star(6)", nil, builder.Star(6), 6, 5},
		{"Complete(5)", nil, builder.Complete(5), 5, 10},
		{"Complete(4) directed", []core.GraphOption{core.WithDirected(true)}, builder.Complete(4), 4, 12},
		{"CompleteBipartite(2,3)", nil, builder.CompleteBipartite(2, 3), 5, 6},
		{"Grid(3,4)", nil, builder.Grid(3, 4), 12, 17},
		{"Grid(2,2) directed", []core.GraphOption{core.WithDirected(true)}, builder.Grid(2, 2), 4, 8},
		{"Complete(1)", nil, builder.Complete(1), 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestBuilders_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("3", "0"), "cycle closes")

	g, err = builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	_, _, deg, err := g.Degree(builder.CenterID)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	g, err = builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("0,1", "0,2"))
	assert.True(t, g.HasEdge("0,1", "1,1"))
	assert.False(t, g.HasEdge("0,0", "1,1"))

	g, err = builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Path(3))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("0", "1"))
	assert.False(t, g.HasEdge("1", "0"))
}

func TestBuildGraph_Weights(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Path(4))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}

	g, err = builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightRange(5, 9)},
		builder.Complete(6),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(5))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithWeightRange(5, 9)}, builder.Path(3))
	require.NoError(t, err, "unweighted graphs ignore the range")
	for _, e := range g.Edges() {
		assert.Zero(t, e.Weight)
	}

	_, err = builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithWeightRange(5, 9)},
		builder.Path(3),
	)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuildGraph_IDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDFn(builder.ExcelColumnIDFn)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDFn(builder.PrefixIDFn("v"))}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())

	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"short path", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"short cycle", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"short star", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"empty grid", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"empty bipartite", nil, builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"bad probability", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"sparse without rng", nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"tree without rng", nil, builder.RandomTree(4), builder.ErrNeedRandSource},
		{"nil id fn", []builder.BuilderOption{builder.WithIDFn(nil)}, builder.Path(3), builder.ErrOptionViolation},
		{"nil rand", []builder.BuilderOption{builder.WithRand(nil)}, builder.Path(3), builder.ErrOptionViolation},
		{"empty range", []builder.BuilderOption{builder.WithWeightRange(3, 2)}, builder.Path(3), builder.ErrOptionViolation},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.bopts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomTree_IsSpanningTree(t *testing.T) {
	for n := 1; n <= 12; n++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(int64(n))}, builder.RandomTree(n))
		require.NoError(t, err)
		assert.Equal(t, n, g.VertexCount())
		assert.Equal(t, n-1, g.EdgeCount())
		comps, err := bfs.Components(g)
		require.NoError(t, err)
		assert.Len(t, comps, 1, "n=%d", n)
	}
}

func TestRandomSparse(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount(), "p=1 is complete")

	g, err = builder.BuildGraph(nil, nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph([]core.GraphOption{core.WithDirected(true), core.WithLoops()}, nil, builder.RandomSparse(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 9, g.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(opt builder.BuilderOption) []string {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{opt}, builder.RandomSparse(20, 0.2))
		require.NoError(t, err)
		var out []string
		for _, e := range g.Edges() {
			out = append(out, e.From+"-"+e.To)
		}

		return out
	}
	a := build(builder.WithSeed(42))
	b := build(builder.WithRand(rand.New(rand.NewSource(42))))
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
