package main

import (
	"fmt"
	"io"

	"github.com/lerenn/kws/cmd/kws/internal/cli"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all workspaces",
		Long: `List the workspaces visible from the configured kcp server.

Examples:
  # List all workspaces
  kws list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := cli.NewManager(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to create KWS instance: %w", err)
			}

			names, err := manager.ListWorkspaces(cmd.Context())
			if err != nil {
				return err
			}

			if !cli.Quiet {
				printWorkspaces(cmd.OutOrStdout(), names)
			}
			return nil
		},
	}
}

func printWorkspaces(out io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(out, "No workspaces found.")
		return
	}

	fmt.Fprintf(out, "Found %d workspace(s):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  - %s\n", name)
	}
}
