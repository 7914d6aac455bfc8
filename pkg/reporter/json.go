package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swanysimon/mdlint/pkg/runner"
)

// jsonOutput is the root of the JSON report.
type jsonOutput struct {
	Files       []jsonFile `json:"files"`
	TotalErrors int        `json:"total_errors"`
}

// jsonFile holds one file's findings.
type jsonFile struct {
	Path       string          `json:"path"`
	Violations []jsonViolation `json:"violations"`
	Error      string          `json:"error,omitempty"`
}

// jsonViolation is one finding.
type jsonViolation struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Fixable bool   `json:"fixable"`
}

// JSONReporter writes machine-readable JSON output.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	output := jsonOutput{Files: make([]jsonFile, 0)}

	if result != nil {
		for _, outcome := range result.Files {
			file := jsonFile{
				Path:       r.opts.displayPath(outcome.Path),
				Violations: make([]jsonViolation, 0),
			}
			if outcome.Err != nil {
				file.Error = outcome.Err.Error()
			} else if outcome.Result != nil {
				for _, v := range outcome.Result.Result.Violations {
					file.Violations = append(file.Violations, jsonViolation{
						Line:    v.Line,
						Column:  v.Column,
						Rule:    v.Rule,
						Message: v.Message,
						Fixable: v.Fixable(),
					})
				}
			}
			output.Files = append(output.Files, file)
		}
		output.TotalErrors = result.Stats.TotalViolations
	}

	encoder := json.NewEncoder(r.opts.Writer)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
