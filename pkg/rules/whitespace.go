package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/fix"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// TrailingWhitespaceRule checks for trailing whitespace on lines (MD009).
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"MD009",
			"Lines should not have trailing spaces",
			[]string{"whitespace"},
			true,
		),
	}
}

// Check flags lines ending in whitespace. Exactly br_spaces trailing spaces
// are allowed as a hard line break unless strict mode is on.
func (r *TrailingWhitespaceRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	brSpaces := opts.Int("br_spaces", 2)
	strict := opts.Bool("strict", false)

	var violations []lint.Violation
	for i, line := range doc.Lines() {
		trimmed := strings.TrimRight(line, " \t")
		trailing := len(line) - len(trimmed)
		if trailing == 0 {
			continue
		}
		if !strict && trailing == brSpaces {
			continue
		}

		num := i + 1
		col := utf8.RuneCountInString(trimmed) + 1
		f := fix.ReplaceColumns(num, col, utf8.RuneCountInString(line), "", "Remove trailing spaces")
		violations = append(violations, lint.Violation{
			Line:    num,
			Column:  col,
			Rule:    r.ID(),
			Message: fmt.Sprintf("Trailing spaces (%d spaces)", trailing),
			Fix:     &f,
		})
	}
	return violations
}

// HardTabsRule checks for hard tab characters (MD010).
type HardTabsRule struct {
	lint.BaseRule
}

// NewHardTabsRule creates a new hard tabs rule.
func NewHardTabsRule() *HardTabsRule {
	return &HardTabsRule{
		BaseRule: lint.NewBaseRule(
			"MD010",
			"Hard tabs should not be used",
			[]string{"whitespace", "hard_tab"},
			true,
		),
	}
}

// Check flags the first hard tab on each line. Setting the code_blocks
// option to false exempts lines inside code blocks.
func (r *HardTabsRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	checkCode := opts.Bool("code_blocks", true)

	var inCode map[int]bool
	if !checkCode {
		inCode = codeBlockLines(doc)
	}

	var violations []lint.Violation
	for i, line := range doc.Lines() {
		num := i + 1
		if !checkCode && inCode[num] {
			continue
		}

		idx := strings.IndexByte(line, '\t')
		if idx < 0 {
			continue
		}

		f := fix.ReplaceLine(num, strings.ReplaceAll(line, "\t", "    "), "Replace tabs with spaces")
		violations = append(violations, lint.Violation{
			Line:    num,
			Column:  utf8.RuneCountInString(line[:idx]) + 1,
			Rule:    r.ID(),
			Message: "Hard tabs found",
			Fix:     &f,
		})
	}
	return violations
}

// MultipleBlankLinesRule checks for runs of blank lines longer than the
// configured maximum (MD012).
type MultipleBlankLinesRule struct {
	lint.BaseRule
}

// NewMultipleBlankLinesRule creates a new multiple blank lines rule.
func NewMultipleBlankLinesRule() *MultipleBlankLinesRule {
	return &MultipleBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD012",
			"Multiple consecutive blank lines",
			[]string{"whitespace", "blank_lines"},
			true,
		),
	}
}

// Check flags each blank run exceeding the maximum. The fix collapses the
// run to exactly maximum blank lines. A run that ends the file gets no fix;
// trailing newlines belong to MD047 and fixing both would collide.
func (r *MultipleBlankLinesRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	maximum := opts.Int("maximum", 1)

	lines := doc.Lines()
	var violations []lint.Violation

	report := func(start, count int, atEOF bool) {
		if count <= maximum {
			return
		}
		var fx *fix.Fix
		if maximum >= 1 && !atEOF {
			f := fix.ReplaceLines(start, start+count-1,
				strings.Repeat("\n", maximum-1), "Remove excess blank lines")
			fx = &f
		}
		violations = append(violations, lint.Violation{
			Line:   start + maximum,
			Column: 1,
			Rule:   r.ID(),
			Message: fmt.Sprintf("Multiple consecutive blank lines (%d blank lines, maximum allowed: %d)",
				count, maximum),
			Fix: fx,
		})
	}

	blankStart, run := 0, 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if run == 0 {
				blankStart = i + 1
			}
			run++
			continue
		}
		report(blankStart, run, false)
		run = 0
	}
	report(blankStart, run, true)

	return violations
}

// FinalNewlineRule ensures files end with a single newline (MD047).
type FinalNewlineRule struct {
	lint.BaseRule
}

// NewFinalNewlineRule creates a new final newline rule.
func NewFinalNewlineRule() *FinalNewlineRule {
	return &FinalNewlineRule{
		BaseRule: lint.NewBaseRule(
			"MD047",
			"Files should end with a single newline character",
			[]string{"blank_lines"},
			true,
		),
	}
}

// Check flags files missing a trailing newline or carrying more than one.
func (r *FinalNewlineRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	content := doc.Content()
	if content == "" {
		return nil
	}

	num := doc.LineCount()
	msg := "Files should end with a single newline character"

	if !strings.HasSuffix(content, "\n") {
		last, _ := doc.Line(num)
		f := fix.ReplaceLine(num, last+"\n", "Add trailing newline")
		return []lint.Violation{{Line: num, Column: 1, Rule: r.ID(), Message: msg, Fix: &f}}
	}

	if !strings.HasSuffix(content, "\n\n") {
		return nil
	}

	// Splice from the last non-empty line through the final (empty) raw
	// line, which sits one past the last document line when the content
	// ends with a newline.
	var fx *fix.Fix
	for k := num; k >= 1; k-- {
		line, ok := doc.Line(k)
		if !ok || line == "" {
			continue
		}
		f := fix.ReplaceLines(k, num+1, line+"\n", "Collapse trailing newlines")
		fx = &f
		break
	}

	return []lint.Violation{{Line: num, Column: 1, Rule: r.ID(), Message: msg, Fix: fx}}
}
