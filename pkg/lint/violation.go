// Package lint provides the rule contract, the rule registry, and the engine
// that runs a document through the enabled rule set.
package lint

import "github.com/swanysimon/mdlint/pkg/fix"

// Violation is one reported rule finding at a specific location. Violations
// are immutable once created; the engine sorts them by ascending line before
// handing them to a consumer.
type Violation struct {
	// Line is the 1-indexed line of the finding.
	Line int

	// Column is the 1-indexed column of the finding, or 0 when the rule
	// reports no column.
	Column int

	// Rule is the identifier of the rule that produced this violation.
	Rule string

	// Message is the human-readable description of the finding.
	Message string

	// Fix is the optional mechanical correction for this violation.
	Fix *fix.Fix
}

// Fixable reports whether this violation carries a fix.
func (v Violation) Fixable() bool {
	return v.Fix != nil
}

// FileResult holds the violations found in a single file.
type FileResult struct {
	Path       string
	Violations []Violation
}

// Fixes returns the fixes carried by this file's violations.
func (fr FileResult) Fixes() []fix.Fix {
	var fixes []fix.Fix
	for _, v := range fr.Violations {
		if v.Fix != nil {
			fixes = append(fixes, *v.Fix)
		}
	}
	return fixes
}

// FixableCount returns the number of violations carrying a fix.
func (fr FileResult) FixableCount() int {
	count := 0
	for _, v := range fr.Violations {
		if v.Fix != nil {
			count++
		}
	}
	return count
}

// LintResult aggregates file results across a run. It is append-only while
// linting and read-only afterward.
type LintResult struct {
	FileResults     []FileResult
	TotalViolations int
}

// Add appends one file's violations to the result.
func (r *LintResult) Add(path string, violations []Violation) {
	r.FileResults = append(r.FileResults, FileResult{Path: path, Violations: violations})
	r.TotalViolations += len(violations)
}

// HasViolations reports whether any file produced violations.
func (r *LintResult) HasViolations() bool {
	return r.TotalViolations > 0
}
