package pretty

import (
	"fmt"

	"github.com/swanysimon/mdlint/pkg/lint"
)

// FormatFileHeader renders a file path with its finding count.
func (s *Styles) FormatFileHeader(path string, count int) string {
	noun := "issues"
	if count == 1 {
		noun = "issue"
	}
	return fmt.Sprintf("%s %s",
		s.FilePath.Render(path),
		s.Dim.Render(fmt.Sprintf("(%d %s)", count, noun)))
}

// FormatViolation renders one finding as an indented line:
//
//	12:3  MD009  Trailing spaces (3 spaces)  [fixable]
func (s *Styles) FormatViolation(v lint.Violation) string {
	location := fmt.Sprintf("%d", v.Line)
	if v.Column > 0 {
		location = fmt.Sprintf("%d:%d", v.Line, v.Column)
	}

	line := fmt.Sprintf("  %s  %s  %s",
		s.Location.Render(fmt.Sprintf("%-7s", location)),
		s.RuleID.Render(v.Rule),
		s.Message.Render(v.Message))

	if v.Fixable() {
		line += "  " + s.Fixable.Render("[fixable]")
	}
	return line + "\n"
}
