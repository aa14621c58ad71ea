package main

import (
	"fmt"

	"github.com/lerenn/kws/cmd/kws/internal/cli"
	"github.com/lerenn/kws/pkg/workspaces"
	"github.com/spf13/cobra"
)

func createDeleteCmd() *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:   "delete [workspace-name]",
		Short: "Delete a workspace",
		Long:  getDeleteCommandLongDescription(),
		Args:  cobra.MaximumNArgs(1),
		RunE:  createDeleteCmdRunE,
	}

	deleteCmd.Flags().BoolP("force", "f", false, "Skip the confirmation dialog")

	return deleteCmd
}

func getDeleteCommandLongDescription() string {
	return `Delete a kcp workspace.

The deletion has to be confirmed by typing the exact name of the workspace.
If the deletion fails, the error is shown and the deletion can be retried.

If no workspace name is provided, you will be prompted to select one interactively.

Examples:
  # Delete workspace with confirmation
  kws delete my-workspace

  # Delete workspace without confirmation
  kws delete my-workspace --force

  # Interactive selection
  kws delete`
}

func createDeleteCmdRunE(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	manager, err := cli.NewManager(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to create KWS instance: %w", err)
	}

	params := workspaces.DeleteWorkspaceParams{Force: force}
	if len(args) > 0 {
		params.WorkspaceName = args[0]
	}

	if err := manager.DeleteWorkspace(cmd.Context(), params); err != nil {
		return err
	}

	if !cli.Quiet {
		if params.WorkspaceName != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Workspace '%s' deleted successfully\n", params.WorkspaceName)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Workspace deleted successfully")
		}
	}
	return nil
}
