// SPDX-License-Identifier: MIT

package flow

import (
	"strings"

	"github.com/katalvlaran/cphb/core"
)

// Suffixes for the two halves of a split vertex. The NUL byte keeps them
// apart from any printable vertex ID.
const (
	inSuffix  = "\x00in"
	outSuffix = "\x00out"
)

// EdgeDisjointPaths returns a maximum set of source→sink paths that share
// no edge. Every edge gets capacity 1 regardless of its weight; undirected
// edges may be used in either direction.
//
// Paths are listed as vertex sequences. The number of paths equals the
// maximum flow of the unit-capacity network.
// Complexity: O(E·√E) via Dinic plus O(k·V) for the decomposition.
func EdgeDisjointPaths(g *core.Graph, source, sink string, opts FlowOptions) ([][]string, error) {
	if _, err := prepare(g, source, sink, &opts); err != nil {
		return nil, err
	}

	net := newNetwork(g.Vertices())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		net.addCap(e.From, e.To, 1)
		if !e.Directed {
			net.addCap(e.To, e.From, 1)
		}
	}
	net.seal()

	k, err := net.dinic(source, sink, opts)
	if err != nil {
		return nil, err
	}

	return net.decompose(source, sink, k), nil
}

// VertexDisjointPaths returns a maximum set of source→sink paths that share
// no vertex other than source and sink.
//
// Each vertex v is split into v_in→v_out with capacity 1 (unbounded for
// source and sink) and every edge u→v becomes u_out→v_in with capacity 1.
// Complexity: as EdgeDisjointPaths on a network of 2V nodes.
func VertexDisjointPaths(g *core.Graph, source, sink string, opts FlowOptions) ([][]string, error) {
	if _, err := prepare(g, source, sink, &opts); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	nodes := make([]string, 0, 2*len(vertices))
	for _, v := range vertices {
		nodes = append(nodes, v+inSuffix, v+outSuffix)
	}
	net := newNetwork(nodes)

	unbounded := int64(len(vertices))
	for _, v := range vertices {
		c := int64(1)
		if v == source || v == sink {
			c = unbounded
		}
		net.addCap(v+inSuffix, v+outSuffix, c)
	}

	link := func(u, v string) {
		// parallel edges still give a single unit
		if net.orig[u+outSuffix][v+inSuffix] > 0 {
			return
		}
		net.addCap(u+outSuffix, v+inSuffix, 1)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		link(e.From, e.To)
		if !e.Directed {
			link(e.To, e.From)
		}
	}
	net.seal()

	k, err := net.dinic(source+outSuffix, sink+inSuffix, opts)
	if err != nil {
		return nil, err
	}

	split := net.decompose(source+outSuffix, sink+inSuffix, k)
	paths := make([][]string, 0, len(split))
	for _, sp := range split {
		var path []string
		for _, node := range sp {
			id := node[:strings.LastIndexByte(node, 0)]
			if len(path) == 0 || path[len(path)-1] != id {
				path = append(path, id)
			}
		}
		paths = append(paths, path)
	}

	return paths, nil
}
