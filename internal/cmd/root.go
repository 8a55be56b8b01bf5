// Package cmd provides the velac CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/velalang/velac/internal/config"
	"github.com/velalang/velac/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// User configuration, loaded during PersistentPreRunE.
	userConfig *config.Config
)

// NewRootCmd creates the root command for the velac CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "velac",
		Short:         "Vela compiler build tool",
		Long:          `velac compiles Vela projects to C, regenerating only the modules whose sources changed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: VELAC_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads the user configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// Commands that don't need config should still work.
		output.Debug("config load error", "error", err)
		cfg = &config.Config{}
	}
	userConfig = cfg

	// Timestamps: flag (if explicitly set) > config > default (off).
	timestamps := cfg.TimestampsEnabled()
	if cmd.Flags().Changed("timestamps") {
		timestamps = timestampsFlag
	}
	output.SetupLogging(verboseFlag, timestamps)

	return nil
}

// GetUserConfig returns the loaded user configuration.
func GetUserConfig() *config.Config {
	if userConfig != nil {
		return userConfig
	}
	return &config.Config{}
}
