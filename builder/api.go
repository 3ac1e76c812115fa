// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// configuration. Constructors validate their parameters before touching g
// and return sentinel errors wrapped with their name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies
// cons in order. The first failure is returned as "BuildGraph: <cause>"
// with the sentinel preserved for errors.Is; no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge adds u-v with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w, err := cfg.weight(g.Weighted())
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if _, err = g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// addVertices adds idFn(0..n-1) in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w", method, id, err)
		}
	}

	return nil
}
