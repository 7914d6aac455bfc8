package rules

import (
	"regexp"
	"unicode/utf8"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/fix"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// bareURLPattern matches URLs not already wrapped in link syntax: the
// character before the scheme must not open a destination, a link label, an
// autolink, or a code span.
var bareURLPattern = regexp.MustCompile("(?:^|[^(\\[<`])((?:https?|ftp)://[^\\s)\\]>]+)")

// NoBareURLsRule checks for URLs pasted directly into text (MD034).
type NoBareURLsRule struct {
	lint.BaseRule
}

// NewNoBareURLsRule creates a new bare URL rule.
func NewNoBareURLsRule() *NoBareURLsRule {
	return &NoBareURLsRule{
		BaseRule: lint.NewBaseRule(
			"MD034",
			"Bare URL used",
			[]string{"links", "url"},
			true,
		),
	}
}

// Check scans each line for bare URLs, suppressing matches whose position
// falls inside a code block or code span. The fix wraps the URL in angle
// brackets to make it an autolink.
func (r *NoBareURLsRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	var violations []lint.Violation

	for i, line := range doc.Lines() {
		num := i + 1

		for _, m := range bareURLPattern.FindAllStringSubmatchIndex(line, -1) {
			start, end := m[2], m[3]
			if doc.InCode(doc.LineOffsetToAbsolute(num, start)) {
				continue
			}

			url := line[start:end]
			colStart := utf8.RuneCountInString(line[:start]) + 1
			colEnd := utf8.RuneCountInString(line[:end])

			f := fix.ReplaceColumns(num, colStart, colEnd, "<"+url+">", "Wrap URL in angle brackets")
			violations = append(violations, lint.Violation{
				Line:    num,
				Column:  colStart,
				Rule:    r.ID(),
				Message: "Bare URL used: " + url,
				Fix:     &f,
			})
		}
	}
	return violations
}
