package rules

import (
	"fmt"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// EmphasisStyleRule checks that emphasis markers are consistent (MD049).
type EmphasisStyleRule struct {
	lint.BaseRule
}

// NewEmphasisStyleRule creates a new emphasis style rule.
func NewEmphasisStyleRule() *EmphasisStyleRule {
	return &EmphasisStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD049",
			"Emphasis style should be consistent",
			[]string{"emphasis"},
			false,
		),
	}
}

// markerPos is one scanned character with its byte offset in the line.
type markerPos struct {
	ch     rune
	offset int
}

// Check scans for single-marker emphasis spans (*text* or _text_, not
// strong) and validates the marker against the configured style:
// "asterisk", "underscore", or the default "consistent", which holds every
// span to whichever marker appeared first. Both the opening and closing
// markers of an offending span are reported. Markers inside code blocks or
// code spans are skipped, so snake_case identifiers in code never match.
func (r *EmphasisStyleRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	style := opts.String("style", "consistent")

	var violations []lint.Violation
	var firstStyle rune

	report := func(line, col int, expected, found rune) {
		var msg string
		if style == "consistent" {
			msg = fmt.Sprintf("Emphasis style should be consistent: expected %q, found %q", expected, found)
		} else {
			msg = fmt.Sprintf("Emphasis style should be %q, found %q", expected, found)
		}
		violations = append(violations, lint.Violation{
			Line: line, Column: col, Rule: r.ID(), Message: msg,
		})
	}

	for i, line := range doc.Lines() {
		num := i + 1

		var chars []markerPos
		for off, ch := range line {
			chars = append(chars, markerPos{ch: ch, offset: off})
		}

		for i := 0; i < len(chars); i++ {
			ch := chars[i].ch
			if ch != '*' && ch != '_' || i+1 >= len(chars) {
				continue
			}

			// A doubled marker on either side is strong, not emphasis.
			if chars[i+1].ch == ch || (i > 0 && chars[i-1].ch == ch) {
				continue
			}

			for j := i + 1; j < len(chars); j++ {
				if chars[j].ch != ch {
					continue
				}
				if (j+1 < len(chars) && chars[j+1].ch == ch) || chars[j-1].ch == ch {
					continue
				}

				if doc.InCode(doc.LineOffsetToAbsolute(num, chars[i].offset)) {
					i = j
					break
				}

				switch style {
				case "consistent":
					if firstStyle == 0 {
						firstStyle = ch
					} else if ch != firstStyle {
						report(num, i+1, firstStyle, ch)
						report(num, j+1, firstStyle, ch)
					}
				default:
					expected := '*'
					if style == "underscore" {
						expected = '_'
					}
					if ch != expected {
						report(num, i+1, expected, ch)
						report(num, j+1, expected, ch)
					}
				}

				i = j
				break
			}
		}
	}
	return violations
}
