package cmd

import (
	"github.com/spf13/cobra"

	"github.com/velalang/velac/internal/output"
	"github.com/velalang/velac/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show velac version information.

Displays:
  - velac version, commit, and build date
  - CUE SDK version (embedded in the binary)`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Println(version.GetInfo().String())
	return nil
}
