package cli

import "errors"

// Exit codes for mdlint.
const (
	// ExitSuccess indicates a clean run with no findings.
	ExitSuccess = 0

	// ExitViolations indicates the run completed and found violations.
	ExitViolations = 1

	// ExitError indicates an operational failure (I/O, config, internal).
	ExitError = 2

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 64
)

// errViolationsFound propagates a non-clean lint outcome up to Execute
// without printing an error message.
var errViolationsFound = errors.New("violations found")

// usageError marks errors caused by invalid flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// exitCodeForError maps an Execute error to a process exit code.
func exitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errViolationsFound):
		return ExitViolations
	default:
		var usage *usageError
		if errors.As(err, &usage) {
			return ExitUsage
		}
		return ExitError
	}
}
