// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devstart/cli/internal/output"
	"github.com/devstart/cli/internal/version"
)

var verboseFlag bool

// NewRootCmd creates the root command for the devstart CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devstart",
		Short: "Scaffold Python projects with dev tooling pre-configured",
		Long: `devstart scaffolds Python projects with all dev tooling pre-configured.

It provides commands to:
  - Create a new project skeleton with src layout, tests, and a Makefile
  - Toggle optional file groups: CI workflow, devcontainer, pre-commit
    hooks, Docker setup, diagram templates, local AI assistant config
  - Manage user-level defaults in ~/.devstart/config.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging based on global flags.
func initializeGlobals() {
	output.SetupLogging(verboseFlag)

	info := version.GetInfo()
	output.Debug("devstart started", "version", info.Version)
}
