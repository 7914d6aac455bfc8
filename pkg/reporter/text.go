package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/swanysimon/mdlint/internal/ui/pretty"
	"github.com/swanysimon/mdlint/pkg/fix"
	"github.com/swanysimon/mdlint/pkg/runner"
)

// TextReporter writes human-readable output grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	w := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	if result == nil {
		return nil
	}

	for _, outcome := range result.Files {
		path := r.opts.displayPath(outcome.Path)

		if outcome.Err != nil {
			fmt.Fprintf(w, "%s %s\n",
				r.styles.Error.Render("error:"),
				fmt.Sprintf("%s: %v", path, outcome.Err))
			continue
		}
		if outcome.Result == nil {
			continue
		}

		violations := outcome.Result.Result.Violations
		if len(violations) == 0 {
			continue
		}

		fmt.Fprintln(w, r.styles.FormatFileHeader(path, len(violations)))
		for _, v := range violations {
			fmt.Fprint(w, r.styles.FormatViolation(v))
		}

		// Dry run: the file is untouched on disk, so it still holds the
		// original content the preview needs.
		if pr := outcome.Result; pr.FixedContent != "" && !pr.Fixed {
			if original, readErr := os.ReadFile(outcome.Path); readErr == nil {
				fmt.Fprint(w, fix.Preview(path, string(original), pr.FixedContent))
			}
		}
		fmt.Fprintln(w)
	}

	if r.opts.ShowSummary {
		r.writeSummary(w, result)
	}
	return nil
}

func (r *TextReporter) writeSummary(w *bufio.Writer, result *runner.Result) {
	stats := result.Stats

	if stats.TotalViolations == 0 && stats.FilesErrored == 0 {
		fmt.Fprintf(w, "%s %s\n",
			r.styles.Success.Render("✓"),
			fmt.Sprintf("%d files checked, no issues found", stats.FilesProcessed))
		return
	}

	line := fmt.Sprintf("%d issues in %d of %d files",
		stats.TotalViolations, stats.FilesWithViolations, stats.FilesProcessed)
	if stats.FixableViolations > 0 {
		line += fmt.Sprintf(" (%d fixable)", stats.FixableViolations)
	}
	if stats.FilesFixed > 0 {
		line += fmt.Sprintf(", %d files fixed", stats.FilesFixed)
	}
	if stats.FilesErrored > 0 {
		line += fmt.Sprintf(", %d files errored", stats.FilesErrored)
	}
	if stats.FixErrors > 0 {
		line += fmt.Sprintf(", %d fix failures", stats.FixErrors)
	}

	style := r.styles.Failure
	if stats.TotalViolations == 0 {
		style = r.styles.Bold
	}
	fmt.Fprintf(w, "%s %s\n", style.Render("✗"), line)
}
