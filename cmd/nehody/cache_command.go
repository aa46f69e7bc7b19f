package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nehody"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the per-region cache artifacts",
	}
	cmd.AddCommand(newCacheStatusCommand(ctx))
	cmd.AddCommand(newCacheClearCommand(ctx))
	return cmd
}

func newCacheStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which regions have a disk cache artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, 14)
			for _, region := range nehody.Regions() {
				path := catalog.CachePath(region)
				size := "-"
				state := "absent"
				if info, err := os.Stat(path); err == nil {
					state = "cached"
					size = fmt.Sprintf("%d", info.Size())
				}
				rows = append(rows, []string{region, state, size, path})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Region", "State", "Bytes", "Artifact"}, rows, 2))
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [region...]",
		Short: "Delete cache artifacts to force a re-parse",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.ensureCatalog()
			if err != nil {
				return err
			}

			regions := args
			if len(regions) == 0 {
				regions = nehody.Regions()
			}
			removed := 0
			for _, region := range regions {
				path := catalog.CachePath(region)
				switch err := os.Remove(path); {
				case err == nil:
					removed++
				case os.IsNotExist(err):
					// nothing cached
				default:
					return fmt.Errorf("removing %s: %w", path, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d artifact(s)\n", removed)
			return nil
		},
	}
}
