package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
	"github.com/swanysimon/mdlint/pkg/fix"
	"github.com/swanysimon/mdlint/pkg/lint"
)

// runRule checks content with a single rule and the given options.
func runRule(t *testing.T, rule lint.Rule, content string, opts config.RuleOptions) []lint.Violation {
	t.Helper()
	return rule.Check(document.New(content), opts)
}

// applyFixes applies every fix attached to the violations and returns the
// corrected content.
func applyFixes(t *testing.T, content string, violations []lint.Violation) string {
	t.Helper()
	var fixes []fix.Fix
	for _, v := range violations {
		if v.Fix != nil {
			fixes = append(fixes, *v.Fix)
		}
	}
	result, err := fix.Apply(content, fixes)
	require.NoError(t, err)
	return result
}
