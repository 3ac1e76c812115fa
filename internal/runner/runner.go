// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cphb/internal/catalog"
	"github.com/katalvlaran/cphb/internal/config"
)

// Result is the outcome of one task. Exactly one of Output and Error is set.
type Result struct {
	ID      string `yaml:"id" json:"id"`
	Solver  string `yaml:"solver" json:"solver"`
	Output  any    `yaml:"output,omitempty" json:"output,omitempty"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty"`
	Elapsed string `yaml:"elapsed" json:"elapsed"`
}

// Report collects the results of one Run in task order.
type Report struct {
	RunID   string    `yaml:"run_id" json:"run_id"`
	Started time.Time `yaml:"started" json:"started"`
	Failed  int       `yaml:"failed" json:"failed"`
	Results []Result  `yaml:"results" json:"results"`
}

// Run executes tasks with at most cfg.Workers in flight, each bounded by
// cfg.Timeout. A failing task is recorded in its Result and does not stop
// the others. The returned error is non-nil only for an invalid cfg or
// when ctx ends before the batch completes; the partial report is still
// returned in the latter case.
//
// Every log entry carries the run's UUID.
func Run(ctx context.Context, cfg config.Config, tasks []Task, logger *zap.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now().UTC(),
		Results: make([]Result, len(tasks)),
	}
	logger = logger.With(zap.String("run_id", report.RunID))
	logger.Info("run started", zap.Int("tasks", len(tasks)), zap.Int("workers", cfg.Workers))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			report.Results[i] = runTask(ctx, cfg.Timeout, task, logger)

			return nil
		})
	}
	_ = g.Wait()

	for _, r := range report.Results {
		if r.Error != "" {
			report.Failed++
		}
	}
	logger.Info("run finished", zap.Int("failed", report.Failed))

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("runner: %w", err)
	}

	return report, nil
}

// lookup resolves solver names; tests swap it.
var lookup = catalog.Lookup

// runTask runs one task. A panicking solver is recorded as the task's
// error so the rest of the batch carries on.
func runTask(ctx context.Context, timeout time.Duration, task Task, logger *zap.Logger) (res Result) {
	log := logger.With(zap.String("task", task.ID), zap.String("solver", task.Solver))
	res = Result{ID: task.ID, Solver: task.Solver}
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			log.Error("task panicked", zap.Any("panic", p), zap.Stack("stack"))
			res.Output = nil
			res.Error = fmt.Sprintf("runner: solver panicked: %v", p)
			res.Elapsed = time.Since(start).String()
		}
	}()

	s, err := lookup(task.Solver)
	if err != nil {
		res.Error = err.Error()
		res.Elapsed = time.Since(start).String()

		return res
	}

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	input := task.Input
	out, err := s.Run(tctx, catalog.Request{Input: &input, Logger: log})
	res.Elapsed = time.Since(start).String()
	if err != nil {
		log.Warn("task failed", zap.Error(err))
		res.Error = err.Error()

		return res
	}
	log.Debug("task done", zap.String("elapsed", res.Elapsed))
	res.Output = out

	return res
}

// Encode writes the report as YAML or JSON (config.OutputYAML / OutputJSON).
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case config.OutputYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: output %q", config.ErrInvalid, format)
	}
}
