package runner

import "github.com/swanysimon/mdlint/pkg/lint"

// FileOutcome pairs a processed path with its result or error.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Result is the pipeline outcome; nil when Err is set.
	Result *lint.ProcessResult

	// Err records an I/O failure for this file. The run continues past it.
	Err error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files linted without I/O errors.
	FilesProcessed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesFixed is the number of files rewritten on disk.
	FilesFixed int

	// FilesWithViolations is the number of files with at least one finding.
	FilesWithViolations int

	// TotalViolations counts findings across all files.
	TotalViolations int

	// FixableViolations counts findings that carry a fix.
	FixableViolations int

	// FixErrors counts files whose fixes conflicted or fell out of bounds.
	FixErrors int
}

// Result is the aggregate outcome of a run, with Files in deterministic
// discovery order regardless of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasViolations reports whether any file produced findings.
func (r *Result) HasViolations() bool {
	return r != nil && r.Stats.TotalViolations > 0
}

// HasErrors reports whether any file hit an I/O or fix failure.
func (r *Result) HasErrors() bool {
	return r != nil && (r.Stats.FilesErrored > 0 || r.Stats.FixErrors > 0)
}

// LintResult flattens the run into the reporting data model, skipping files
// that failed before linting.
func (r *Result) LintResult() lint.LintResult {
	var out lint.LintResult
	for _, outcome := range r.Files {
		if outcome.Err != nil || outcome.Result == nil {
			continue
		}
		out.Add(outcome.Path, outcome.Result.Result.Violations)
	}
	return out
}

// UnfixedViolations counts violations still present on disk after the run,
// summing each file's post-fix remainder (or its full count when nothing
// was written).
func (r *Result) UnfixedViolations() int {
	count := 0
	for _, outcome := range r.Files {
		if outcome.Err != nil || outcome.Result == nil {
			continue
		}
		count += outcome.Result.Unfixed
	}
	return count
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Result.Fixed {
		r.Stats.FilesFixed++
	}
	if outcome.Result.FixError != nil {
		r.Stats.FixErrors++
	}

	violations := outcome.Result.Result.Violations
	r.Stats.TotalViolations += len(violations)
	r.Stats.FixableViolations += outcome.Result.Result.FixableCount()
	if len(violations) > 0 {
		r.Stats.FilesWithViolations++
	}
}
