package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/langdetect"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// CodeBlockLanguageRule checks that fenced code blocks declare a language
// (MD040).
type CodeBlockLanguageRule struct {
	lint.BaseRule
}

// NewCodeBlockLanguageRule creates a new code block language rule.
func NewCodeBlockLanguageRule() *CodeBlockLanguageRule {
	return &CodeBlockLanguageRule{
		BaseRule: lint.NewBaseRule(
			"MD040",
			"Fenced code blocks should have a language specified",
			[]string{"code", "language"},
			false,
		),
	}
}

// Check flags fenced blocks without an info string; when the block content
// identifies a language confidently, the message suggests it. The
// allowed_languages option restricts info strings to a list, and
// validate_language flags info strings no known language matches. Indented
// code blocks are ignored.
func (r *CodeBlockLanguageRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	allowed := opts.StringSlice("allowed_languages", nil)
	validate := opts.Bool("validate_language", false)

	var violations []lint.Violation
	for _, ev := range doc.Events() {
		if ev.Kind != document.KindCodeBlock || !ev.Fenced {
			continue
		}
		line, _ := doc.OffsetToPosition(ev.Range.Start)
		info := strings.TrimSpace(ev.Info)

		if info == "" {
			msg := "Fenced code block should have a language specified"
			if lang := langdetect.Detect(fenceBody(doc, ev)); lang != "text" {
				msg = fmt.Sprintf("%s (content looks like %s)", msg, lang)
			}
			violations = append(violations, lint.Violation{
				Line: line, Column: 1, Rule: r.ID(), Message: msg,
			})
			continue
		}

		switch {
		case len(allowed) > 0 && !slices.Contains(allowed, strings.ToLower(info)):
			violations = append(violations, lint.Violation{
				Line: line, Column: 1, Rule: r.ID(),
				Message: fmt.Sprintf("Language %q is not in the allowed list", info),
			})
		case validate && !langdetect.Known(info):
			violations = append(violations, lint.Violation{
				Line: line, Column: 1, Rule: r.ID(),
				Message: fmt.Sprintf("Unknown language %q on fenced code block", info),
			})
		}
	}
	return violations
}

// fenceBody extracts the content of a fenced block, dropping the fence
// lines the event range includes.
func fenceBody(doc *document.Document, ev document.Event) []byte {
	text := doc.Content()[ev.Range.Start:ev.Range.End]
	lines := strings.Split(text, "\n")

	if len(lines) > 0 && isFence(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) > 0 && isFence(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return []byte(strings.Join(lines, "\n"))
}

func isFence(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}
