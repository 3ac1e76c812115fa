// SPDX-License-Identifier: MIT

// Package runner executes batches of catalog solvers described in a YAML
// task file, with bounded concurrency and a timeout per task.
//
// A task file looks like:
//
//	tasks:
//	  - id: shortest
//	    solver: dijkstra
//	    input:
//	      source: A
//	      edges:
//	        - {from: A, to: B, weight: 2}
//	  - solver: primes
//	    input: {n: 30}
//
// Results are reported in file order regardless of completion order.
package runner

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cphb/internal/catalog"
)

var (
	// ErrNoTasks indicates a task file without tasks.
	ErrNoTasks = errors.New("runner: no tasks")

	// ErrBadTask indicates a task without a solver or with a repeated ID.
	ErrBadTask = errors.New("runner: bad task")
)

// Task is one solver invocation.
type Task struct {
	// ID names the task in the report; "task-<n>" (1-based) when omitted.
	ID     string    `yaml:"id"`
	Solver string    `yaml:"solver"`
	Input  yaml.Node `yaml:"input"`
}

// TaskFile is the top-level YAML document.
type TaskFile struct {
	Tasks []Task `yaml:"tasks"`
}

// ParseTasks decodes and validates a task file. Unknown top-level or task
// fields are rejected, as are unknown solver names.
func ParseTasks(r io.Reader) ([]Task, error) {
	var tf TaskFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTasks
		}

		return nil, fmt.Errorf("runner: parse tasks: %w", err)
	}
	if len(tf.Tasks) == 0 {
		return nil, ErrNoTasks
	}

	seen := make(map[string]bool, len(tf.Tasks))
	for i := range tf.Tasks {
		t := &tf.Tasks[i]
		if t.ID == "" {
			t.ID = fmt.Sprintf("task-%d", i+1)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrBadTask, t.ID)
		}
		seen[t.ID] = true
		if t.Solver == "" {
			return nil, fmt.Errorf("%w: task %q has no solver", ErrBadTask, t.ID)
		}
		if _, err := catalog.Lookup(t.Solver); err != nil {
			return nil, fmt.Errorf("task %q: %w", t.ID, err)
		}
	}

	return tf.Tasks, nil
}
