package main

import (
	"fmt"

	"github.com/lerenn/kws/cmd/kws/internal/cli"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Initialize KWS configuration",
		Long: `Write the default KWS configuration file.

Flags:
  --force   Overwrite an existing configuration file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			manager := cli.NewConfigManager()
			if err := manager.InitConfig(force); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration written to %s\n", manager.GetConfigPath())
			}
			return nil
		},
	}

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")

	return initCmd
}
