package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// OrderedListPrefixRule checks ordered list item numbering (MD029).
type OrderedListPrefixRule struct {
	lint.BaseRule
}

// NewOrderedListPrefixRule creates a new ordered list prefix rule.
func NewOrderedListPrefixRule() *OrderedListPrefixRule {
	return &OrderedListPrefixRule{
		BaseRule: lint.NewBaseRule(
			"MD029",
			"Ordered list item prefix",
			[]string{"ol"},
			false,
		),
	}
}

// Check validates numeric prefixes against the configured style: "one"
// requires every item to use 1, "ordered" requires a sequential count, and
// the default "one_or_ordered" accepts either. Lines inside code blocks are
// exempt.
func (r *OrderedListPrefixRule) Check(doc *document.Document, opts config.RuleOptions) []lint.Violation {
	style := opts.String("style", "one_or_ordered")

	inCode := codeBlockLines(doc)

	var violations []lint.Violation
	expected := 1
	inList := false

	for i, line := range doc.Lines() {
		num := i + 1
		if inCode[num] {
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")

		dot := strings.IndexByte(trimmed, '.')
		if dot < 0 {
			bullet := strings.HasPrefix(trimmed, "*") ||
				strings.HasPrefix(trimmed, "+") ||
				strings.HasPrefix(trimmed, "-")
			if strings.TrimSpace(line) != "" && !bullet {
				inList = false
				expected = 1
			}
			continue
		}

		prefix := trimmed[:dot]
		if !allDigits(prefix) {
			inList = false
			continue
		}

		n, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}

		if !inList {
			inList = true
			expected = 1
		}

		var valid bool
		switch style {
		case "one":
			valid = n == 1
		case "ordered":
			valid = n == expected
		default:
			valid = n == 1 || n == expected
		}

		if !valid {
			shouldBe := expected
			if style == "one" {
				shouldBe = 1
			}
			violations = append(violations, lint.Violation{
				Line:    num,
				Column:  len(line) - len(trimmed) + 1,
				Rule:    r.ID(),
				Message: fmt.Sprintf("Ordered list item prefix: expected %d, found %d", shouldBe, n),
			})
		}

		// The next item is judged against what was actually written, so one
		// mistake does not cascade down the list.
		expected = n + 1
	}
	return violations
}
