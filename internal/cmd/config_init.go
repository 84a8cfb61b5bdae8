package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devstart/cli/internal/config"
	"github.com/devstart/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter defaults file",
		Long: `Write a commented starter defaults file to ~/.devstart/config.yaml.

Examples:
  # Initialize the defaults file
  devstart config init

  # Overwrite an existing defaults file
  devstart config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := config.DefaultPaths()
			if err != nil {
				return fmt.Errorf("determining home directory: %w", err)
			}

			if _, err := os.Stat(paths.ConfigFile); err == nil && !forceFlag {
				return fmt.Errorf("defaults file already exists at %s; use --force to overwrite", paths.ConfigFile)
			}

			if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
				return fmt.Errorf("creating %s: %w", paths.HomeDir, err)
			}

			if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", paths.ConfigFile, err)
			}

			output.Println("Defaults file written to " + paths.ConfigFile)
			output.Println("Validate with: devstart config vet")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing defaults file")

	return cmd
}
