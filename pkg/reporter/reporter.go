// Package reporter formats lint run results for humans and machines.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/runner"
)

// Reporter formats and writes a completed run.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = DefaultOptions().ErrorWriter
	}
	if opts.Version == "" {
		opts.Version = DefaultOptions().Version
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatText:
		return NewTextReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatJUnit:
		return NewJUnitReporter(opts), nil
	case config.FormatSARIF:
		return NewSARIFReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// displayPath returns path relative to the options' working directory when
// that makes it shorter, otherwise the path unchanged.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return filepath.ToSlash(rel)
}
