package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/velalang/velac/internal/config"
	oerrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage velac configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigVetCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file populated with defaults.

The file goes to the standard location unless VELAC_CONFIG or --config
points elsewhere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(force bool) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		return oerrors.NewValidationError(
			fmt.Sprintf("config file already exists: %s", path),
			path,
			"pass --force to overwrite it",
		)
	}

	blob, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	content := "# velac configuration. Values here are overridden by VELAC_*\n" +
		"# environment variables and command-line flags.\n" + string(blob)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("wrote %s", path)))
	return nil
}

func newConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet [file]",
		Short: "Validate a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigVet(path)
		},
	}
}

func runConfigVet(path string) error {
	if path == "" {
		var err error
		path, err = resolveConfigPath()
		if err != nil {
			return err
		}
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("config file not found: %s", path),
			path,
			"run `velac config init` to create one",
		)
	}

	v, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := v.ValidateFile(path); err != nil {
		return oerrors.NewValidationError(err.Error(), path, "")
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("%s is valid", path)))
	return nil
}

// resolveConfigPath prefers the --config flag, then VELAC_CONFIG, then
// the default location, with ~ expanded.
func resolveConfigPath() (string, error) {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", err
		}
	}
	return config.ExpandPath(path)
}
