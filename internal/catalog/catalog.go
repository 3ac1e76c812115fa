// SPDX-License-Identifier: MIT

// Package catalog maps solver names to library algorithms so that cphb can
// run them on YAML-described inputs.
//
// A solver decodes its input node into a typed struct, calls the library
// and returns a value that encodes cleanly as YAML or JSON. Solvers honour
// the context where the underlying algorithm does (bfs, dfs, flow) and are
// checked for cancellation before and after running.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownSolver is returned by Lookup for a name not in the catalog.
	ErrUnknownSolver = errors.New("catalog: unknown solver")

	// ErrBadInput wraps input decoding and shape errors.
	ErrBadInput = errors.New("catalog: bad input")
)

// Request carries one solver invocation.
type Request struct {
	// Input is the task's input mapping; nil when the task has none.
	Input *yaml.Node
	// Logger receives Debug detail from iterative algorithms. Nil is silent.
	Logger *zap.Logger
}

// Solver is a named algorithm entry point.
type Solver struct {
	Name    string
	Summary string
	solve   func(ctx context.Context, req Request) (any, error)
}

// NewSolver wraps fn as a Solver. Lookup only returns the built-in
// solvers; NewSolver serves callers that dispatch their own.
func NewSolver(name, summary string, fn func(ctx context.Context, req Request) (any, error)) Solver {
	return Solver{Name: name, Summary: summary, solve: fn}
}

// Run executes the solver on req. It fails fast on a done context and
// reports the context error if the deadline passed while solving.
func (s Solver) Run(ctx context.Context, req Request) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Logger == nil {
		req.Logger = zap.NewNop()
	}
	out, err := s.solve(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

var registry = func() map[string]Solver {
	m := make(map[string]Solver)
	for _, group := range [][]Solver{graphSolvers(), gridSolvers(), sequenceSolvers(), mathSolvers(), textSolvers()} {
		for _, s := range group {
			if _, dup := m[s.Name]; dup {
				panic("catalog: duplicate solver " + s.Name)
			}
			m[s.Name] = s
		}
	}

	return m
}()

// Lookup returns the solver registered under name.
func Lookup(name string) (Solver, error) {
	s, ok := registry[name]
	if !ok {
		return Solver{}, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}

	return s, nil
}

// Names returns every solver name in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// decode unmarshals the request input into T.
func decode[T any](req Request) (T, error) {
	var v T
	if req.Input == nil || req.Input.Kind == 0 {
		return v, fmt.Errorf("%w: missing input", ErrBadInput)
	}
	if err := req.Input.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	return v, nil
}
