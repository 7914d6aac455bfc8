package reporter

import (
	"io"
	"os"

	"github.com/swanysimon/mdlint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for per-file errors (typically
	// os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary appends aggregate statistics after text results.
	ShowSummary bool

	// Compact uses minified output for machine formats.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are reported as-is.
	WorkingDir string

	// Version is the tool version embedded in machine-readable output.
	Version string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      config.FormatText,
		Color:       "auto",
		ShowSummary: true,
		Version:     "dev",
	}
}
