// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cphb/internal/catalog"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every available solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range catalog.Names() {
				s, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Summary)
			}

			return tw.Flush()
		},
	}
}
