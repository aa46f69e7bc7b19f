package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nehody"
)

func newRegionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the known region codes and their CSV entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(nehody.Regions()))
			for _, code := range nehody.Regions() {
				csvName, _ := nehody.RegionFile(code)
				rows = append(rows, []string{code, csvName})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Region", "CSV entry"}, rows))
			return nil
		},
	}
}
