// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cphb/internal/runner"
)

func newRunCmd(a *app) *cobra.Command {
	var failOnError bool
	cmd := &cobra.Command{
		Use:   "run <tasks.yaml>",
		Short: "Run a batch of tasks concurrently and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			tasks, err := runner.ParseTasks(f)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			report, runErr := runner.Run(ctx, a.cfg, tasks, a.logger)
			if report != nil {
				if err := a.encode(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			}
			if runErr != nil {
				return runErr
			}
			if failOnError && report.Failed > 0 {
				return fmt.Errorf("%d of %d tasks failed", report.Failed, len(report.Results))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "Exit non-zero when any task fails")

	return cmd
}
