// Package main provides the command-line interface for the KWS application.
package main

import (
	"log"

	"github.com/lerenn/kws/cmd/kws/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kws",
		Short: "KWS - kcp workspace manager",
		Long: `A CLI tool for listing and deleting kcp workspaces. ` +
			`Deleting a workspace requires typing its exact name.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&cli.LogJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(createInitCmd(), createListCmd(), createDeleteCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
