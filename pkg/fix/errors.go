package fix

import "fmt"

// ConflictError reports two fixes whose regions overlap. Overlapping fixes
// are rejected rather than resolved: silently picking a winner would produce
// a result no rule actually requested.
type ConflictError struct {
	First  Fix
	Second Fix
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting fixes: lines %d-%d (%s) and lines %d-%d (%s)",
		e.First.LineStart, e.First.LineEnd, e.First.Description,
		e.Second.LineStart, e.Second.LineEnd, e.Second.Description)
}

// OutOfBoundsError reports a fix that addresses a line or column outside the
// content it is being applied to.
type OutOfBoundsError struct {
	Fix    Fix
	Reason string
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("fix out of bounds at lines %d-%d: %s", e.Fix.LineStart, e.Fix.LineEnd, e.Reason)
}
