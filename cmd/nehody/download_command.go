package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Download the latest accident archives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}
			if err := catalog.DownloadData(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "archives are up to date")
			return nil
		},
	}
}
