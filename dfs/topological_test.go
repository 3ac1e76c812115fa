// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/dfs"
)

func TestTopologicalSort_Orders(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]string
		extra []string
		want  []string
	}{
		{name: "empty", want: []string{}},
		{name: "isolated", extra: []string{"c", "a", "b"}, want: []string{"a", "b", "c"}},
		{name: "chain", edges: [][2]string{{"A", "B"}, {"B", "C"}}, want: []string{"A", "B", "C"}},
		{name: "smallest first", edges: [][2]string{{"c", "a"}, {"b", "a"}}, want: []string{"b", "c", "a"}},
		{
			name: "shared child",
			edges: [][2]string{
				{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
				{"C", "G"}, {"D", "E"}, {"D", "F"}, {"G", "H"},
			},
			want: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := directed(t, tc.edges...)
			for _, v := range tc.extra {
				require.NoError(t, g.AddVertex(v))
			}
			order, err := dfs.TopologicalSort(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, order)
		})
	}
}

func TestTopologicalSort_RespectsEveryEdge(t *testing.T) {
	edges := [][2]string{
		{"V1", "V3"}, {"V1", "V2"}, {"V2", "V5"}, {"V3", "V5"}, {"V2", "V4"},
		{"V4", "V6"}, {"V5", "V7"}, {"V6", "V8"}, {"V7", "V9"}, {"V8", "V10"},
	}
	order, err := dfs.TopologicalSort(directed(t, edges...))
	require.NoError(t, err)
	require.Len(t, order, 10)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e[0]], pos[e[1]], "%s→%s", e[0], e[1])
	}
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	undirected := core.NewGraph()
	_, _ = undirected.AddEdge("A", "B", 0)
	_, err = dfs.TopologicalSort(undirected)
	assert.ErrorIs(t, err, dfs.ErrUndirectedEdge)

	order, err := dfs.TopologicalSort(directed(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Nil(t, order)

	_, err = dfs.TopologicalSort(directed(t, [2]string{"x", "x"}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected, "a self-loop is a cycle")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(directed(t, [2]string{"a", "b"}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
