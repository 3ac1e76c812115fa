// SPDX-License-Identifier: MIT

// Command cphb runs the algorithms of this module from the command line.
//
//	cphb list                              # every solver with a summary
//	cphb solve dijkstra -i graph.yaml      # one solver, input from file or stdin
//	cphb run tasks.yaml --workers 8        # a batch of tasks, concurrently
//	cphb gen grid -n 3 -m 4                # a generated graph, as solver input
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/cphb/internal/config"
	"github.com/katalvlaran/cphb/internal/runner"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	verbose    bool
	workers    int
	timeout    time.Duration
	output     string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "cphb",
		Short: "Competitive programming algorithms as a command-line toolkit",
		Long: `cphb exposes graph, sequence, number theory, string and geometry
algorithms as named solvers. Each solver reads a YAML input document and
prints its result as YAML or JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file (workers, timeout, log_level, output)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.IntVar(&a.workers, "workers", 0, "Concurrent tasks for run (overrides config)")
	pf.DurationVar(&a.timeout, "timeout", 0, "Per-task timeout (overrides config)")
	pf.StringVarP(&a.output, "output", "o", "", "Output format: yaml or json (overrides config)")

	root.AddCommand(newListCmd(a))
	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newGenCmd(a))

	return root
}

// setup resolves the configuration (file, then environment, then flags)
// and builds the logger unless one was injected.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger != nil {
		return nil
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// encode writes v in the configured output format.
func (a *app) encode(w io.Writer, v any) error {
	if r, ok := v.(*runner.Report); ok {
		return r.Encode(w, a.cfg.Output)
	}

	return encodeValue(w, a.cfg.Output, v)
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
