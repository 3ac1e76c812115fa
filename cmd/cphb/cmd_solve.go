// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cphb/internal/catalog"
)

func newSolveCmd(a *app) *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "solve <solver>",
		Short: "Run one solver on a YAML input",
		Long: `Run one solver. The input document is read from --input, or from
stdin when --input is omitted or "-". Output of "cphb gen" is valid input
for every graph solver.`,
		Example: `  cphb gen path -n 5 | cphb solve tree-diameter
  cphb solve lis -i values.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if inputPath != "" && inputPath != "-" {
				f, err := os.Open(inputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			var input yaml.Node
			if err := yaml.NewDecoder(r).Decode(&input); err != nil && err != io.EOF {
				return fmt.Errorf("read input: %w", err)
			}
			if input.Kind == yaml.DocumentNode && len(input.Content) == 1 {
				input = *input.Content[0]
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()
			log := a.logger.With(zap.String("solver", s.Name))
			log.Debug("solving")
			out, err := s.Run(ctx, catalog.Request{Input: &input, Logger: log})
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}

			return a.encode(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input YAML file (default stdin)")

	return cmd
}
