package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dataDirFlag string
	var urlFlag string

	ctx := newCommandContext(&configFlag, &dataDirFlag, &urlFlag)

	rootCmd := &cobra.Command{
		Use:           "nehody",
		Short:         "Czech traffic-accident archive ingestion and statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (TOML)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Folder for archives and cache artifacts")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "Upstream listing page URL")

	rootCmd.AddCommand(newDownloadCommand(ctx))
	rootCmd.AddCommand(newRegionsCommand(ctx))
	rootCmd.AddCommand(newStatCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))

	return rootCmd
}
