package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// MaxLineLengthRule checks line length against a maximum (MD013).
type MaxLineLengthRule struct {
	lint.BaseRule
}

// NewMaxLineLengthRule creates a new maximum line length rule.
func NewMaxLineLengthRule() *MaxLineLengthRule {
	return &MaxLineLengthRule{
		BaseRule: lint.NewBaseRule(
			"MD013",
			"Line length",
			[]string{"line_length"},
			false,
		),
	}
}

// Check measures lines in characters, not bytes. Headings, code blocks, and
// tables can each be exempted, and headings can carry their own limit via
// heading_line_length.
func (r *MaxLineLengthRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	lineLength := opts.Int("line_length", 80)
	headingLineLength := opts.Int("heading_line_length", 0)
	checkCodeBlocks := opts.Bool("code_blocks", true)
	checkTables := opts.Bool("tables", true)
	checkHeadings := opts.Bool("headings", true)

	headingLines := make(map[int]bool)
	codeLines := make(map[int]bool)
	tableLines := make(map[int]bool)

	for _, ev := range doc.Events() {
		var target map[int]bool
		switch ev.Kind {
		case document.KindHeading:
			target = headingLines
		case document.KindCodeBlock:
			target = codeLines
		case document.KindTable:
			target = tableLines
		default:
			continue
		}
		start, end := eventLineSpan(doc, ev)
		for n := start; n <= end; n++ {
			target[n] = true
		}
	}

	var violations []lint.Violation
	for i, line := range doc.Lines() {
		num := i + 1

		isHeading := headingLines[num]
		if isHeading && !checkHeadings {
			continue
		}
		if codeLines[num] && !checkCodeBlocks {
			continue
		}
		if tableLines[num] && !checkTables {
			continue
		}

		limit := lineLength
		if isHeading && headingLineLength > 0 {
			limit = headingLineLength
		}

		length := utf8.RuneCountInString(line)
		if length <= limit {
			continue
		}

		violations = append(violations, lint.Violation{
			Line:    num,
			Column:  limit + 1,
			Rule:    r.ID(),
			Message: fmt.Sprintf("Line exceeds maximum length (%d > %d)", length, limit),
		})
	}
	return violations
}
