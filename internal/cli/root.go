// Package cli provides the Cobra command structure for mdlint.
package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swanysimon/mdlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "mdlint",
		Short: "A fast, self-fixing Markdown linter",
		Long: `mdlint checks Markdown files against a configurable rule set and can
automatically fix many of the issues it finds. Fixes are applied atomically
per file, with conflict detection so overlapping corrections never corrupt
a document.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.SetLevel(logLevel)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand(info))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return rootCmd
}

// Execute runs the CLI and returns the process exit code. Invocations whose
// first argument is not a known subcommand are routed to lint, so plain
// "mdlint docs/" works.
func Execute(info BuildInfo) int {
	rootCmd := NewRootCommand(info)
	rootCmd.SetArgs(defaultToLint(rootCmd, os.Args[1:]))

	err := rootCmd.Execute()
	code := exitCodeForError(err)
	if err != nil && code != ExitViolations {
		fmt.Fprintf(os.Stderr, "mdlint: %v\n", err)
	}
	return code
}

// defaultToLint inserts the lint subcommand when the invocation names no
// subcommand, preserving flags and paths.
func defaultToLint(rootCmd *cobra.Command, args []string) []string {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			if arg == "--help" || arg == "-h" || arg == "--version" {
				return args
			}
			continue
		}
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == arg || slices.Contains(sub.Aliases, arg) {
				return args
			}
		}
		break
	}
	return append([]string{"lint"}, args...)
}
