// SPDX-License-Identifier: MIT

package tree_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/tree"
)

// sample builds
//
//	    1
//	  / | \
//	 2  3  4
//	/ \     \
//	5  6     7
//	          \
//	           8
func sample(t testing.TB) *tree.Tree {
	g := core.NewGraph()
	for _, e := range [][2]string{{"1", "2"}, {"1", "3"}, {"1", "4"}, {"2", "5"}, {"2", "6"}, {"4", "7"}, {"7", "8"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	tr, err := tree.New(g, "1")
	require.NoError(t, err)

	return tr
}

// randomTree attaches vertex i to a random earlier vertex.
func randomTree(n int, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	_ = g.AddVertex("v0")
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge("v"+strconv.Itoa(r.Intn(i)), "v"+strconv.Itoa(i), 0)
	}

	return g
}

func TestNew_Validation(t *testing.T) {
	_, err := tree.New(nil, "a")
	assert.ErrorIs(t, err, tree.ErrGraphNil)

	cyc := core.NewGraph()
	_, _ = cyc.AddEdge("a", "b", 0)
	_, _ = cyc.AddEdge("b", "c", 0)
	_, _ = cyc.AddEdge("c", "a", 0)
	_, err = tree.New(cyc, "a")
	assert.ErrorIs(t, err, tree.ErrNotTree)

	// n-1 edges but a cycle plus an isolated vertex.
	_ = cyc.AddVertex("d")
	_, err = tree.New(cyc, "a")
	assert.ErrorIs(t, err, tree.ErrNotTree)

	dir := core.NewGraph(core.WithDirected(true))
	_, _ = dir.AddEdge("a", "b", 0)
	_, err = tree.New(dir, "a")
	assert.ErrorIs(t, err, tree.ErrNotTree)

	ok := core.NewGraph()
	_, _ = ok.AddEdge("a", "b", 0)
	_, err = tree.New(ok, "z")
	assert.ErrorIs(t, err, tree.ErrVertexNotFound)
}

func TestNew_Shape(t *testing.T) {
	tr := sample(t)
	assert.Equal(t, "1", tr.Root())
	assert.Equal(t, 8, tr.Len())
	assert.Equal(t, []string{"1", "2", "5", "6", "3", "4", "7", "8"}, tr.Preorder())

	p, err := tr.Parent("1")
	require.NoError(t, err)
	assert.Equal(t, "", p)
	p, err = tr.Parent("8")
	require.NoError(t, err)
	assert.Equal(t, "7", p)

	d, err := tr.Depth("8")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	kids, err := tr.Children("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4"}, kids)

	for v, want := range map[string]int{"1": 8, "2": 3, "3": 1, "4": 3, "7": 2, "8": 1} {
		got, err := tr.SubtreeSize(v)
		require.NoError(t, err)
		assert.Equal(t, want, got, "size of %s", v)
	}
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("x")
	tr, err := tree.New(g, "x")
	require.NoError(t, err)

	length, path := tr.Diameter()
	assert.Zero(t, length)
	assert.Equal(t, []string{"x"}, path)
	assert.Equal(t, map[string]int64{"x": 0}, tr.FarthestDistances())

	lca, err := tree.NewEulerLCA(tr).Query("x", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", lca)
}

func TestDiameter(t *testing.T) {
	length, path := sample(t).Diameter()
	assert.Equal(t, int64(5), length)
	assert.Equal(t, []string{"5", "2", "1", "4", "7", "8"}, path)
}

func TestDiameter_Weighted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 5)
	_, _ = g.AddEdge("b", "c", 2)
	_, _ = g.AddEdge("b", "d", 1)
	tr, err := tree.New(g, "d")
	require.NoError(t, err)

	length, path := tr.Diameter()
	assert.Equal(t, int64(7), length)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, path)

	dist, err := tr.Distance("a", "c")
	require.NoError(t, err)
	assert.Equal(t, int64(7), dist)
}

func TestFarthestDistances(t *testing.T) {
	want := map[string]int64{"1": 3, "2": 4, "3": 4, "4": 3, "5": 5, "6": 5, "7": 4, "8": 5}
	assert.Equal(t, want, sample(t).FarthestDistances())
}

func TestFarthestDistances_MatchesBruteForce(t *testing.T) {
	tr, err := tree.New(randomTree(60, 7), "v0")
	require.NoError(t, err)

	far := tr.FarthestDistances()
	ids := tr.Preorder()
	for _, a := range ids {
		var best int64
		for _, b := range ids {
			d, err := tr.Distance(a, b)
			require.NoError(t, err)
			best = max(best, d)
		}
		assert.Equal(t, best, far[a], "vertex %s", a)
	}
}

func TestKthAncestor(t *testing.T) {
	tr := sample(t)
	for k, want := range []string{"8", "7", "4", "1"} {
		got, err := tr.KthAncestor("8", k)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := tr.KthAncestor("8", 4)
	assert.ErrorIs(t, err, tree.ErrNoAncestor)
	_, err = tr.KthAncestor("8", -1)
	assert.ErrorIs(t, err, tree.ErrNoAncestor)
	_, err = tr.KthAncestor("nope", 0)
	assert.ErrorIs(t, err, tree.ErrVertexNotFound)
}

func TestLCAAndDistance(t *testing.T) {
	tr := sample(t)
	euler := tree.NewEulerLCA(tr)
	cases := []struct {
		a, b, lca string
		dist      int64
	}{
		{"5", "6", "2", 2},
		{"5", "8", "1", 5},
		{"7", "8", "7", 1},
		{"3", "3", "3", 0},
		{"6", "3", "1", 3},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s-%s", tc.a, tc.b), func(t *testing.T) {
			got, err := tr.LCA(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.lca, got)

			got, err = euler.Query(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.lca, got)

			d, err := tr.Distance(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.dist, d)
		})
	}

	_, err := tr.LCA("5", "nope")
	assert.ErrorIs(t, err, tree.ErrVertexNotFound)
	_, err = euler.Query("nope", "5")
	assert.ErrorIs(t, err, tree.ErrVertexNotFound)
}

func TestEulerLCA_AgreesWithLifting(t *testing.T) {
	tr, err := tree.New(randomTree(120, 3), "v0")
	require.NoError(t, err)
	euler := tree.NewEulerLCA(tr)

	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		a := "v" + strconv.Itoa(r.Intn(120))
		b := "v" + strconv.Itoa(r.Intn(120))
		want, err := tr.LCA(a, b)
		require.NoError(t, err)
		got, err := euler.Query(a, b)
		require.NoError(t, err)
		require.Equal(t, want, got, "lca(%s, %s)", a, b)
	}
}

func TestSubtreeQueries(t *testing.T) {
	tr := sample(t)
	q, err := tree.NewSubtreeQueries(tr)
	require.NoError(t, err)
	for _, v := range tr.Preorder() {
		x, _ := strconv.Atoi(v)
		require.NoError(t, q.SetValue(v, int64(x)))
	}

	sum, err := q.SubtreeSum("2")
	require.NoError(t, err)
	assert.Equal(t, int64(13), sum)
	sum, err = q.SubtreeSum("1")
	require.NoError(t, err)
	assert.Equal(t, int64(36), sum)
	sum, err = q.PathSum("8")
	require.NoError(t, err)
	assert.Equal(t, int64(20), sum)

	require.NoError(t, q.SetValue("4", 0))
	val, err := q.Value("4")
	require.NoError(t, err)
	assert.Zero(t, val)
	sum, err = q.PathSum("8")
	require.NoError(t, err)
	assert.Equal(t, int64(16), sum)
	sum, err = q.SubtreeSum("1")
	require.NoError(t, err)
	assert.Equal(t, int64(32), sum)
	sum, err = q.PathSum("6")
	require.NoError(t, err)
	assert.Equal(t, int64(9), sum)

	assert.ErrorIs(t, q.SetValue("nope", 1), tree.ErrVertexNotFound)
}

func TestDistinctInSubtrees(t *testing.T) {
	tr := sample(t)
	values := map[string]string{"1": "a", "2": "b", "3": "a", "4": "c", "5": "b", "6": "d", "7": "c", "8": "c"}

	got, err := tree.DistinctInSubtrees(tr, values)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 4, "2": 2, "3": 1, "4": 1, "5": 1, "6": 1, "7": 1, "8": 1}, got)

	delete(values, "6")
	_, err = tree.DistinctInSubtrees(tr, values)
	assert.ErrorIs(t, err, tree.ErrVertexNotFound)
}
