// SPDX-License-Identifier: MIT

package catalog_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cphb/internal/catalog"
)

// node parses a YAML document into the node a task file would carry.
func node(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	return &doc
}

// run looks up name, solves src and returns the result re-read as generic YAML.
func run(t *testing.T, name, src string) any {
	t.Helper()
	s, err := catalog.Lookup(name)
	require.NoError(t, err)
	out, err := s.Run(context.Background(), catalog.Request{Input: node(t, src)})
	require.NoError(t, err)

	data, err := yaml.Marshal(out)
	require.NoError(t, err)
	var generic any
	require.NoError(t, yaml.Unmarshal(data, &generic))

	return generic
}

func TestNames(t *testing.T) {
	names := catalog.Names()
	assert.True(t, sort.StringsAreSorted(names))
	for _, want := range []string{"dijkstra", "maxflow", "lis", "z-function", "convex-hull", "primes"} {
		assert.Contains(t, names, want)
	}
	for _, name := range names {
		s, err := catalog.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
		assert.NotEmpty(t, s.Summary)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := catalog.Lookup("teleport")
	assert.ErrorIs(t, err, catalog.ErrUnknownSolver)
}

func TestGraphSolvers(t *testing.T) {
	triangle := `
edges:
  - {from: A, to: B, weight: 4}
  - {from: A, to: C, weight: 1}
  - {from: C, to: B, weight: 2}
source: A
`
	assert.Equal(t,
		map[string]any{"source": "A", "dist": map[string]any{"A": 0, "B": 3, "C": 1}},
		run(t, "dijkstra", triangle))
	assert.Equal(t,
		map[string]any{"source": "A", "dist": map[string]any{"A": 0, "B": 3, "C": 1}},
		run(t, "bellman-ford", triangle))

	mst := run(t, "mst", triangle).(map[string]any)
	assert.Equal(t, 3, mst["total"])

	network := `
directed: true
edges:
  - {from: s, to: a, weight: 3}
  - {from: s, to: b, weight: 2}
  - {from: a, to: t, weight: 2}
  - {from: b, to: t, weight: 3}
  - {from: a, to: b, weight: 1}
source: s
sink: t
`
	flow := run(t, "maxflow", network).(map[string]any)
	assert.Equal(t, 5, flow["value"])

	dag := `
directed: true
edges:
  - {from: A, to: B}
  - {from: B, to: C}
`
	assert.Equal(t, map[string]any{"order": []any{"A", "B", "C"}}, run(t, "topo-sort", dag))

	scc := run(t, "scc", "directed: true\nedges:\n  - {from: A, to: B}\n  - {from: B, to: A}\n")
	require.Len(t, scc, 1)
	assert.ElementsMatch(t, []any{"A", "B"}, scc.([]any)[0])

	count := run(t, "spanning-trees", "edges:\n  - {from: a, to: b}\n  - {from: b, to: c}\n  - {from: c, to: a}\n")
	assert.Equal(t, 3, count)
}

func TestSequenceSolvers(t *testing.T) {
	lis := run(t, "lis", "values: [6, 2, 5, 1, 7, 4, 8, 3]").(map[string]any)
	assert.Equal(t, 4, lis["length"])

	ed := run(t, "edit-distance", "a: LOVE\nb: MOVIE\n").(map[string]any)
	assert.Equal(t, 2, ed["distance"])

	assert.Equal(t, 9, run(t, "inversions", "values: [1, 3, 8, 2, 9, 2, 5, 6]"))
	assert.Equal(t, 92, run(t, "nqueens", "n: 8"))

	sub := run(t, "max-subarray", "values: [-1, 2, 4, -3, 5, 2, -5, 2]").(map[string]any)
	assert.Equal(t, 10, sub["sum"])
}

func TestMathAndTextSolvers(t *testing.T) {
	assert.Equal(t, []any{2, 3, 5, 7, 11, 13, 17, 19}, run(t, "primes", "n: 20"))
	assert.Equal(t, map[string]any{"x": 53, "modulus": 105},
		run(t, "crt", "remainders: [3, 4, 2]\nmoduli: [5, 7, 3]\n"))
	assert.Equal(t, 10, run(t, "binomial", "n: 5\nk: 2"))
	assert.Equal(t, 55, run(t, "fibonacci", "n: 10"))
	assert.Equal(t,
		map[string]any{"nim_sum": 3, "winning": true, "heap": 0, "take": 1},
		run(t, "nim", "heaps: [10, 12, 5]"))
	assert.Equal(t,
		map[string]any{"nim_sum": 0, "winning": false},
		run(t, "nim", "heaps: [1, 2, 3]"))

	assert.Equal(t, []any{1, 6}, run(t, "find-all", "text: HATTIVATTI\npattern: ATT\n"))
	sa := run(t, "suffix-array", "text: banana").(map[string]any)
	assert.Equal(t, []any{5, 3, 1, 0, 4, 2}, sa["suffix_array"])
	assert.Equal(t, 15, sa["distinct_substrings"])

	hull := run(t, "convex-hull", "points: [[0,0],[2,1],[4,0],[3,3],[1,2],[2,4]]")
	assert.Equal(t, []any{[]any{0, 0}, []any{4, 0}, []any{3, 3}, []any{2, 4}}, hull)
}

func TestGridSolvers(t *testing.T) {
	const plan = "map: ['########', '#..#...#', '####.#.#', '#..#...#', '########']\n"
	assert.Equal(t, map[string]any{"rooms": 3, "sizes": []any{2, 8, 2}}, run(t, "grid-rooms", plan))

	out := run(t, "grid-path", plan+"from: [4, 1]\nto: [6, 3]\n").(map[string]any)
	assert.Equal(t, 4, out["steps"])
	assert.Len(t, out["path"], 5)

	s, err := catalog.Lookup("grid-path")
	require.NoError(t, err)
	_, err = s.Run(context.Background(), catalog.Request{Input: node(t, plan+"open: '..'\n")})
	assert.ErrorIs(t, err, catalog.ErrBadInput)

	board := run(t, "knights-tour", "n: 5").([]any)
	require.Len(t, board, 5)
	assert.Equal(t, 1, board[0].([]any)[0])
}

func TestRun_Errors(t *testing.T) {
	s, err := catalog.Lookup("lis")
	require.NoError(t, err)

	_, err = s.Run(context.Background(), catalog.Request{})
	assert.ErrorIs(t, err, catalog.ErrBadInput)

	_, err = s.Run(context.Background(), catalog.Request{Input: node(t, "values: nope")})
	assert.ErrorIs(t, err, catalog.ErrBadInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx, catalog.Request{Input: node(t, "values: [1]")})
	assert.ErrorIs(t, err, context.Canceled)

	d, err := catalog.Lookup("dijkstra")
	require.NoError(t, err)
	_, err = d.Run(context.Background(), catalog.Request{Input: node(t, "edges:\n  - {from: '', to: B}\n")})
	assert.ErrorIs(t, err, catalog.ErrBadInput)
}
