// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

const (
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minGridDim    = 1

	// CenterID is the fixed ID of the hub added by Star.
	CenterID = "Center"

	gridIDFmt = "%d,%d"
)

// Path builds the path P_n: 0-1-...-(n-1), n ≥ 2.
// Edges are emitted in index order; on directed graphs they point forward.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the cycle C_n, n ≥ 3: a path closed by (n-1)-0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub CenterID joined to n-1 leaves idFn(0..n-2), n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterID); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w", methodStar, CenterID, err)
		}
		if err := addVertices(g, cfg, methodStar, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodStar, CenterID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n, n ≥ 1. Undirected graphs get one edge per pair
// i<j; directed graphs get both arcs.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(g, cfg, methodComplete, cfg.idFn(j), cfg.idFn(i)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with left vertices "L0".."L{n1-1}"
// and right vertices "R0".."R{n2-1}"; directed graphs point left to right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d: %w", methodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		left, right := PrefixIDFn("L"), PrefixIDFn("R")
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, left(i), right(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbour grid with IDs "r,c" in row-major
// order. Each cell links right then down; directed graphs get both arcs.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%q): %w", methodGrid, id(r, c), err)
				}
			}
		}
		link := func(u, v string) error {
			if err := addEdge(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if g.Directed() {
				return addEdge(g, cfg, methodGrid, v, u)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
