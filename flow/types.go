// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cphb/core"
)

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSourceIsSink is returned when source and sink are the same vertex.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")

	// ErrBadInterval is returned for a negative LevelRebuildInterval.
	ErrBadInterval = errors.New("flow: level rebuild interval must be >= 0")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation; checked before every augmentation.
//   - Logger: receives one Debug entry per augmentation. Nil means silent.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations (0 = never early).
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *zap.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns options with a background context, a no-op logger
// and no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *FlowOptions) normalize() error {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.LevelRebuildInterval < 0 {
		return fmt.Errorf("%w: got %d", ErrBadInterval, o.LevelRebuildInterval)
	}

	return nil
}

// Cut is a minimum s-t cut.
//   - Value: total capacity of the cut, equal to the maximum flow.
//   - Source: vertices reachable from the source in the final residual network, sorted.
//   - Edges: original edges leaving Source, in creation order.
type Cut struct {
	Value  int64
	Source []string
	Edges  []*core.Edge
}
