package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swanysimon/mdlint/internal/configloader"
	"github.com/swanysimon/mdlint/internal/logging"
	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/lint"
	"github.com/swanysimon/mdlint/pkg/reporter"
	"github.com/swanysimon/mdlint/pkg/rules"
	"github.com/swanysimon/mdlint/pkg/runner"
)

const lintLongDescription = `Lint Markdown files for style and formatting issues.

By default, lints all .md and .markdown files in the current directory and
its subdirectories. Specify paths to lint specific files or directories.

Examples:
  mdlint lint                    # Lint current directory
  mdlint lint docs/              # Lint docs directory
  mdlint lint README.md          # Lint single file
  mdlint lint --fix              # Lint and auto-fix issues
  mdlint lint --fix --dry-run    # Show what would be fixed
  mdlint lint --format json      # Output as JSON for CI`

type lintFlags struct {
	format  string
	ignore  []string
	enable  []string
	disable []string
	compact bool
}

func newLintCommand(info BuildInfo) *cobra.Command {
	var cliCfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cliCfg, flags, info)
		},
	}

	cmd.Flags().BoolVar(&cliCfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cliCfg.DryRun, "dry-run", false, "compute fixes without writing files")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, junit, sarif")
	cmd.Flags().IntVar(&cliCfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified machine-readable output")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *lintFlags, info BuildInfo) error {
	logger := logging.Default()

	if flags.format != "" && !config.OutputFormat(flags.format).IsValid() {
		return &usageError{err: fmt.Errorf("unsupported output format: %s", flags.format)}
	}

	cliCfg.Format = config.OutputFormat(flags.format)
	cliCfg.Ignore = flags.ignore
	cliCfg.EnableRules = flags.enable
	cliCfg.DisableRules = flags.disable

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLI:          cliCfg,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg := loadResult.Config

	if loadResult.Path != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.Path)
	}
	logger.Debug("configuration resolved",
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
	)

	engine := lint.NewEngine(rules.NewDefaultRegistry(), cfg)
	lintRunner := runner.New(lint.NewPipeline(engine))

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}
	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run: %w", err)
	}
	logger.Debug("lint run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesFixed, result.Stats.FilesFixed,
		logging.FieldViolations, result.Stats.TotalViolations,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      cfg.Format,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
		Version:     info.Version,
	})
	if err != nil {
		return &usageError{err: err}
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return fmt.Errorf("%d files failed (%d I/O errors, %d fix failures)",
			result.Stats.FilesErrored+result.Stats.FixErrors,
			result.Stats.FilesErrored, result.Stats.FixErrors)
	}
	// Violations resolved by an applied fix do not fail the run.
	if result.UnfixedViolations() > 0 {
		return errViolationsFound
	}
	return nil
}
