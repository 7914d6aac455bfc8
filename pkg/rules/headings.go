package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/fix"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// HeadingIncrementRule checks that heading levels increment by one (MD001).
type HeadingIncrementRule struct {
	lint.BaseRule
}

// NewHeadingIncrementRule creates a new heading increment rule.
func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: lint.NewBaseRule(
			"MD001",
			"Heading levels should only increment by one level at a time",
			[]string{"headings", "headers"},
			false,
		),
	}
}

// Check compares each heading level against the previous one. Decreasing
// levels are always allowed; only upward jumps of more than one are flagged.
func (r *HeadingIncrementRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	var violations []lint.Violation
	lastLevel := 0

	for _, ev := range doc.Events() {
		if ev.Kind != document.KindHeading {
			continue
		}
		line, _ := doc.OffsetToPosition(ev.Range.Start)

		if lastLevel > 0 && ev.Level > lastLevel+1 {
			violations = append(violations, lint.Violation{
				Line:    line,
				Column:  1,
				Rule:    r.ID(),
				Message: fmt.Sprintf("Heading level skipped from h%d to h%d", lastLevel, ev.Level),
			})
		}
		lastLevel = ev.Level
	}
	return violations
}

// NoMissingSpaceATXRule checks for a space after the hashes of an ATX
// heading (MD018).
type NoMissingSpaceATXRule struct {
	lint.BaseRule
}

// NewNoMissingSpaceATXRule creates a new missing-space ATX heading rule.
func NewNoMissingSpaceATXRule() *NoMissingSpaceATXRule {
	return &NoMissingSpaceATXRule{
		BaseRule: lint.NewBaseRule(
			"MD018",
			"No space after hash on ATX style heading",
			[]string{"headings", "headers", "atx", "spaces"},
			true,
		),
	}
}

// Check scans raw lines for hash runs not followed by whitespace. Lines
// inside code blocks are exempt so shell comments are not mistaken for
// headings.
func (r *NoMissingSpaceATXRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	inCode := codeBlockLines(doc)

	var violations []lint.Violation
	for i, line := range doc.Lines() {
		num := i + 1
		if inCode[num] {
			continue
		}

		trimmed := strings.TrimSpace(line)
		hashes := countLeading(trimmed, '#')
		if hashes < 1 || hashes > 6 || hashes == len(trimmed) {
			continue
		}

		next, _ := utf8.DecodeRuneInString(trimmed[hashes:])
		if unicode.IsSpace(next) || next == '#' {
			continue
		}

		replacement := leadingWhitespace(line) + trimmed[:hashes] + " " + trimmed[hashes:]
		f := fix.ReplaceLine(num, replacement, "Add space after hash")
		violations = append(violations, lint.Violation{
			Line:    num,
			Column:  hashes + 1,
			Rule:    r.ID(),
			Message: "No space after hash on ATX style heading",
			Fix:     &f,
		})
	}
	return violations
}

// NoMultipleSpaceATXRule checks for multiple spaces after the hashes of an
// ATX heading (MD019).
type NoMultipleSpaceATXRule struct {
	lint.BaseRule
}

// NewNoMultipleSpaceATXRule creates a new multiple-space ATX heading rule.
func NewNoMultipleSpaceATXRule() *NoMultipleSpaceATXRule {
	return &NoMultipleSpaceATXRule{
		BaseRule: lint.NewBaseRule(
			"MD019",
			"Multiple spaces after hash on ATX style heading",
			[]string{"headings", "headers", "atx", "spaces"},
			true,
		),
	}
}

// Check collapses runs of spaces between the hashes and the heading text.
func (r *NoMultipleSpaceATXRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	inCode := codeBlockLines(doc)

	var violations []lint.Violation
	for i, line := range doc.Lines() {
		num := i + 1
		if inCode[num] {
			continue
		}

		trimmed := strings.TrimSpace(line)
		hashes := countLeading(trimmed, '#')
		if hashes < 1 || hashes > 6 || hashes >= len(trimmed) {
			continue
		}

		rest := trimmed[hashes:]
		spaces := countLeading(rest, ' ')
		if spaces <= 1 {
			continue
		}

		replacement := leadingWhitespace(line) + trimmed[:hashes] + " " + strings.TrimLeft(rest, " ")
		f := fix.ReplaceLine(num, replacement, "Replace multiple spaces with single space")
		violations = append(violations, lint.Violation{
			Line:    num,
			Column:  hashes + 2,
			Rule:    r.ID(),
			Message: fmt.Sprintf("Multiple spaces after hash on ATX style heading (%d spaces)", spaces),
			Fix:     &f,
		})
	}
	return violations
}

// SingleH1Rule checks for multiple top-level headings (MD025).
type SingleH1Rule struct {
	lint.BaseRule
}

// NewSingleH1Rule creates a new single h1 rule.
func NewSingleH1Rule() *SingleH1Rule {
	return &SingleH1Rule{
		BaseRule: lint.NewBaseRule(
			"MD025",
			"Multiple top-level headings in the same document",
			[]string{"headings", "headers"},
			false,
		),
	}
}

// Check flags every h1 after the first.
func (r *SingleH1Rule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	var violations []lint.Violation
	firstLine := 0

	for _, ev := range doc.Events() {
		if ev.Kind != document.KindHeading || ev.Level != 1 {
			continue
		}
		line, _ := doc.OffsetToPosition(ev.Range.Start)

		if firstLine > 0 {
			violations = append(violations, lint.Violation{
				Line:    line,
				Column:  1,
				Rule:    r.ID(),
				Message: fmt.Sprintf("Multiple top-level headings (first h1 at line %d)", firstLine),
			})
			continue
		}
		firstLine = line
	}
	return violations
}

// NoTrailingPunctuationRule checks for trailing punctuation in headings
// (MD026).
type NoTrailingPunctuationRule struct {
	lint.BaseRule
}

// NewNoTrailingPunctuationRule creates a new trailing punctuation rule.
func NewNoTrailingPunctuationRule() *NoTrailingPunctuationRule {
	return &NoTrailingPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"MD026",
			"Trailing punctuation in heading",
			[]string{"headings"},
			true,
		),
	}
}

// Check inspects the last visible character of each heading line, ignoring
// a closed-ATX hash sequence. The punctuation option lists the offending
// characters; question marks are deliberately not in the default set.
func (r *NoTrailingPunctuationRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	punctuation := opts.String("punctuation", ".,;:!")

	var violations []lint.Violation
	for _, ev := range doc.Events() {
		if ev.Kind != document.KindHeading {
			continue
		}
		num, _ := doc.OffsetToPosition(ev.Range.Start)
		line, ok := doc.Line(num)
		if !ok {
			continue
		}

		candidate := strings.TrimRight(line, " \t")
		if strings.HasPrefix(strings.TrimLeft(candidate, " \t"), "#") && strings.HasSuffix(candidate, "#") {
			candidate = strings.TrimRight(strings.TrimRight(candidate, "#"), " \t")
		}
		if candidate == "" {
			continue
		}

		last, _ := utf8.DecodeLastRuneInString(candidate)
		if !strings.ContainsRune(punctuation, last) {
			continue
		}

		col := utf8.RuneCountInString(candidate)
		f := fix.ReplaceColumns(num, col, col, "", "Remove trailing punctuation")
		violations = append(violations, lint.Violation{
			Line:    num,
			Column:  col,
			Rule:    r.ID(),
			Message: fmt.Sprintf("Trailing punctuation in heading: %q", last),
			Fix:     &f,
		})
	}
	return violations
}
