package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devstart/cli/internal/output"
	"github.com/devstart/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			output.Println(version.GetInfo().String())
		},
	}
}
