package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/output"
	"github.com/velalang/velac/internal/project"
	"github.com/velalang/velac/internal/templates"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new Vela project",
		Long: `Create a new Vela project from the starter template.

The generated project has a vela.cue manifest, a src/ directory with an
entry module, and a .gitignore for the output directory.

Examples:
  # Create a project in ./hello
  velac init hello

  # Create a project in a specific directory
  velac init hello --dir ./projects/hello`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args[0], dirFlag)
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "",
		"Directory to create the project in (defaults to the project name)")

	return cmd
}

func runInit(name, dir string) error {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q", name),
			"",
			"project names must be non-empty and contain no path separators",
		)
	}

	targetDir := dir
	if targetDir == "" {
		targetDir = name
	}

	if _, err := os.Stat(targetDir); err == nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("directory already exists: %s", targetDir),
			targetDir,
			"choose a different directory or remove the existing one",
		)
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", targetDir, err)
	}

	created, err := templates.Render(targetDir, templates.TemplateData{
		ProjectName: name,
		Output:      project.DefaultOutput,
	})
	if err != nil {
		_ = os.RemoveAll(targetDir)
		return fmt.Errorf("rendering project template: %w", err)
	}

	output.Println(fmt.Sprintf("Created project %q\n", name))

	descs := templates.FileDescriptions()
	files := make(map[string]string, len(created))
	for _, f := range created {
		files[f] = descs[f]
	}
	output.Print(output.RenderFileTree(targetDir, files))

	output.Println("\nNext steps:")
	output.Println(fmt.Sprintf("  cd %s", targetDir))
	output.Println("  velac build")

	return nil
}
