// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cphb/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the command tree with a silent logger and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvWorkers, "")
	t.Setenv(config.EnvTimeout, "")

	var out bytes.Buffer
	root := newRootCmd(&app{logger: zap.NewNop()})
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "dijkstra")
	assert.Contains(t, out, "z-function")
	assert.Contains(t, out, "nqueens")
}

func TestSolve_Stdin(t *testing.T) {
	out, err := execute(t, "n: 10\n", "solve", "fibonacci")
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestSolve_InputFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte("values: [-1, 2, 4, -3, 5, 2, -5, 2]\n"), 0o600))

	out, err := execute(t, "", "solve", "max-subarray", "-i", path, "-o", "json")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.EqualValues(t, 10, got["sum"])
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "", "solve", "teleport")
	assert.Error(t, err)

	_, err = execute(t, "", "solve", "fibonacci")
	assert.ErrorContains(t, err, "missing input")
}

func TestGen_FeedsSolvers(t *testing.T) {
	out, err := execute(t, "", "gen", "path", "-n", "5")
	require.NoError(t, err)

	var g genGraph
	require.NoError(t, yaml.Unmarshal([]byte(out), &g))
	assert.Len(t, g.Vertices, 5)
	assert.Len(t, g.Edges, 4)
	assert.False(t, g.Directed)

	diam, err := execute(t, out, "solve", "tree-diameter")
	require.NoError(t, err)
	var d struct {
		Path []string `yaml:"path"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(diam), &d))
	require.Len(t, d.Path, 5)
	assert.ElementsMatch(t, []string{"0", "4"}, []string{d.Path[0], d.Path[4]})
}

func TestGen_WeightedIsReproducible(t *testing.T) {
	args := []string{"gen", "tree", "-n", "8", "--seed", "7", "--min-weight", "1", "--max-weight", "9"}
	first, err := execute(t, "", args...)
	require.NoError(t, err)
	second, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var g genGraph
	require.NoError(t, yaml.Unmarshal([]byte(first), &g))
	assert.True(t, g.Weighted)
	require.Len(t, g.Edges, 7)
	for _, e := range g.Edges {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestGen_UnknownShape(t *testing.T) {
	_, err := execute(t, "", "gen", "hexagon")
	assert.ErrorContains(t, err, "unknown shape")
}

func TestRun_Report(t *testing.T) {
	dir := t.TempDir()
	tasks := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(tasks, []byte(`
tasks:
  - {id: fib, solver: fibonacci, input: {n: 10}}
  - {id: bad, solver: primes, input: {n: -1}}
`), 0o600))

	out, err := execute(t, "", "run", tasks, "--workers", "2", "-o", "json")
	require.NoError(t, err)
	var report struct {
		RunID   string `json:"run_id"`
		Failed  int    `json:"failed"`
		Results []struct {
			ID     string `json:"id"`
			Output any    `json:"output"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 2)
	assert.EqualValues(t, 55, report.Results[0].Output)

	_, err = execute(t, "", "run", tasks, "--fail-on-error")
	assert.ErrorContains(t, err, "1 of 2 tasks failed")
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cphb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\noutput: json\n"), 0o600))

	a := &app{logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs([]string{"--config", path, "--workers", "6", "list"})
	root.SetOut(&bytes.Buffer{})
	require.NoError(t, root.Execute())
	assert.Equal(t, 6, a.cfg.Workers)
	assert.Equal(t, config.OutputJSON, a.cfg.Output)

	_, err := execute(t, "", "--workers", "0", "list")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigFlagsOverrideInvalidEnv(t *testing.T) {
	t.Setenv(config.EnvWorkers, "0")
	t.Setenv(config.EnvTimeout, "")

	a := &app{logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs([]string{"--workers", "4", "list"})
	root.SetOut(&bytes.Buffer{})
	require.NoError(t, root.Execute())
	assert.Equal(t, 4, a.cfg.Workers)

	root = newRootCmd(&app{logger: zap.NewNop()})
	root.SetArgs([]string{"list"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.ErrorIs(t, root.Execute(), config.ErrInvalid)
}
