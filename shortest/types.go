// SPDX-License-Identifier: MIT

package shortest

import (
	"errors"
	"fmt"
	"math"
)

// Inf is the distance reported for unreachable vertices.
const Inf int64 = math.MaxInt64

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is missing.
	ErrSourceNotFound = errors.New("shortest: source vertex not found")

	// ErrVertexNotFound is returned by queries that name an unknown vertex.
	ErrVertexNotFound = errors.New("shortest: vertex not found")

	// ErrNegativeCycle is returned when a negative cycle makes distances undefined.
	ErrNegativeCycle = errors.New("shortest: negative cycle detected")

	// ErrNoPath is returned when the destination is unreachable.
	ErrNoPath = errors.New("shortest: no path")
)

// Result holds single-source distances.
//
// Dist maps every vertex to its distance from Source (Inf when unreachable).
// Prev maps every reached vertex except Source to its predecessor.
type Result struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
}

// PathTo rebuilds the path Source → … → dst.
// Returns ErrVertexNotFound for unknown dst and ErrNoPath when dst is unreachable.
func (r *Result) PathTo(dst string) ([]string, error) {
	d, ok := r.Dist[dst]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, dst)
	}
	if d == Inf {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
	}

	path := []string{dst}
	for cur := dst; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// relaxed returns d+w, or Inf when d is Inf.
func relaxed(d, w int64) int64 {
	if d == Inf {
		return Inf
	}

	return d + w
}
