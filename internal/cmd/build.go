package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/velalang/velac/internal/build"
	"github.com/velalang/velac/internal/codegen"
	"github.com/velalang/velac/internal/config"
	oerrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/output"
	"github.com/velalang/velac/internal/project"
	"github.com/velalang/velac/internal/version"
)

// buildFlags collects the build command's local flags.
type buildFlags struct {
	output   string
	target   string
	noPrefix bool
	strict   bool
	report   string
}

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Compile stale modules to C",
		Long: `Compile a Vela project to C sources.

velac loads vela.cue, discovers the project's modules, and regenerates
only those whose sources changed since the last build. Generated code,
companion headers, and externs land under the output directory; the
runtime scaffold and Makefile stub are written on the first build.

Arguments:
  dir    Path to the project directory (default: current directory)

Examples:
  # Build the project in the current directory
  velac build

  # Build into a different output root
  velac build -o gen

  # Fail on warnings and write a session report
  velac build --strict --report report.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output root for generated sources (env: VELAC_OUTPUT)")
	cmd.Flags().StringVar(&flags.target, "target", "",
		"Code generation toolchain (env: VELAC_TARGET)")
	cmd.Flags().BoolVar(&flags.noPrefix, "no-prefix", false,
		"Do not stamp generated files with the compiler version")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"Treat warnings as build failures")
	cmd.Flags().StringVar(&flags.report, "report", "",
		"Write a YAML session report to this path")

	return cmd
}

// runBuild executes the build command.
func runBuild(args []string, flags buildFlags) error {
	ctx := context.Background()

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg := GetUserConfig()

	proj, err := project.NewLoader().Load(dir)
	if err != nil {
		return projectError(dir, err)
	}

	inputs, err := proj.Discover()
	if err != nil {
		return projectError(dir, err)
	}
	if len(inputs.Order) == 0 {
		output.Warn("no modules found", "project", proj.Manifest.Name)
		return nil
	}

	target, outputRoot := resolveBuildValues(flags, cfg, proj)
	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{target, outputRoot})
	}

	tc, ok := codegen.Lookup(target.Value)
	if !ok {
		return oerrors.NewNoToolchainError(target.Value, codegen.Targets())
	}

	opts := build.Options{
		OutputDir:   outputRoot.Value,
		Provenance:  !flags.noPrefix && cfg.ProvenanceEnabled(),
		ToolName:    "velac",
		ToolVersion: version.Short(),
	}
	sink := build.ProgressFunc(func(p build.Progress) {
		output.Debug(string(p.Event), "module", p.Module.String(), "path", p.Path)
	})
	session := build.NewSession(build.NewContext(opts, sink), tc, inputs.Specs, inputs.Order)

	output.Info("building project",
		"name", proj.Manifest.Name,
		"modules", len(inputs.Order),
		"target", target.Value,
	)

	start := time.Now()
	var res *build.SessionResult
	run := func() error {
		res = session.Run(ctx)
		return nil
	}
	if verboseFlag {
		_ = run()
	} else if err := output.RunWithSpinner(fmt.Sprintf("compiling %d modules", len(inputs.Order)), run); err != nil {
		return err
	}
	elapsed := time.Since(start)

	printResult(res, elapsed)

	if flags.report != "" {
		if err := writeReport(flags.report, proj.Manifest.Name, target.Value, res, elapsed); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		output.Info("report written", "path", flags.report)
	}

	if res.Failed() {
		_, _, failed := res.Counts()
		return oerrors.NewExitError(
			fmt.Errorf("%d of %d modules failed", failed, len(res.Modules)),
			oerrors.ExitBuildFailed,
		)
	}
	if flags.strict && len(res.Warnings) > 0 {
		return oerrors.NewExitError(
			fmt.Errorf("build produced %d warnings with --strict", len(res.Warnings)),
			oerrors.ExitBuildFailed,
		)
	}
	return nil
}

// resolveBuildValues applies the flag > env > config > default
// precedence to the target and output root. A relative output root is
// anchored at the project directory.
func resolveBuildValues(flags buildFlags, cfg *config.Config, proj *project.Project) (target, outputRoot config.ResolvedValue) {
	target = config.Resolve(config.ResolveOptions{
		Key:         "target",
		FlagValue:   flags.target,
		EnvVar:      "VELAC_TARGET",
		ConfigValue: cfg.Target,
		Default:     config.DefaultTarget,
	})
	outputRoot = config.Resolve(config.ResolveOptions{
		Key:         "output",
		FlagValue:   flags.output,
		EnvVar:      "VELAC_OUTPUT",
		ConfigValue: cfg.Output,
		Default:     proj.Manifest.Output,
	})
	if !filepath.IsAbs(outputRoot.Value) {
		outputRoot.Value = filepath.Join(proj.Dir, outputRoot.Value)
	}
	return target, outputRoot
}

// projectError maps project loading failures onto user-facing errors.
func projectError(dir string, err error) error {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return oerrors.NewNotFoundError(
			err.Error(),
			dir,
			"run `velac init <name>` to start a project",
		)
	case errors.Is(err, project.ErrInvalidManifest):
		return oerrors.NewValidationError(
			err.Error(),
			filepath.Join(dir, project.ManifestFile),
			"",
		)
	default:
		return err
	}
}

// printResult renders per-module status lines, warnings, and the
// summary line.
func printResult(res *build.SessionResult, elapsed time.Duration) {
	for _, m := range res.Modules {
		output.Println(output.FormatModuleLine(m.Name.String(), string(m.Status)))
		if m.Err != nil {
			output.Println("  " + output.StyleError.Render(m.Err.Error()))
		}
	}
	for _, w := range res.Warnings {
		output.Println(output.FormatWarning(fmt.Sprintf("%s: %s", w.Module, w.Message)))
	}

	compiled, fresh, failed := res.Counts()
	summary := fmt.Sprintf("%d compiled, %d fresh in %s", compiled, fresh, elapsed.Round(time.Millisecond))
	if failed > 0 {
		output.Println(output.FormatErrorLine(fmt.Sprintf("%d failed, %s", failed, summary)))
	} else {
		output.Println(output.FormatCheckmark(summary))
	}
}
