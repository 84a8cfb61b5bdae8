package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config parent command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage devstart user defaults",
		Long: `Manage the devstart user defaults file.

The defaults file (~/.devstart/config.yaml) seeds any value not supplied
via flags: author, python version, description, and feature flag defaults.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}
