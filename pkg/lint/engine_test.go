package lint

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swanysimon/mdlint/pkg/config"
)

func TestLintContentSortsByLine(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newStubRule("MD002",
		Violation{Line: 9, Rule: "MD002", Message: "late"},
		Violation{Line: 1, Rule: "MD002", Message: "early"},
	))
	reg.Register(newStubRule("MD001",
		Violation{Line: 5, Rule: "MD001", Message: "middle"},
	))

	engine := NewEngine(reg, nil)
	violations := engine.LintContent("anything\n")

	require.Len(t, violations, 3)
	assert.True(t, sort.SliceIsSorted(violations, func(i, j int) bool {
		return violations[i].Line < violations[j].Line
	}))
	assert.Equal(t, "early", violations[0].Message)
	assert.Equal(t, "middle", violations[1].Message)
	assert.Equal(t, "late", violations[2].Message)
}

func TestLintContentStableSortOnTies(t *testing.T) {
	// Registry enumerates by ID, so MD001 emits before MD002; a tie on line
	// must preserve that order.
	reg := NewRegistry()
	reg.Register(newStubRule("MD002", Violation{Line: 3, Rule: "MD002"}))
	reg.Register(newStubRule("MD001", Violation{Line: 3, Rule: "MD001"}))

	engine := NewEngine(reg, nil)
	violations := engine.LintContent("x\n")

	require.Len(t, violations, 2)
	assert.Equal(t, "MD001", violations[0].Rule)
	assert.Equal(t, "MD002", violations[1].Rule)
}

func TestLintContentDeterministic(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newStubRule("MD001", Violation{Line: 2, Rule: "MD001"}))
	reg.Register(newStubRule("MD002", Violation{Line: 1, Rule: "MD002"}))
	engine := NewEngine(reg, nil)

	first := engine.LintContent("a\nb\n")
	second := engine.LintContent("a\nb\n")
	assert.Equal(t, first, second)
}

func TestDispatchSemantics(t *testing.T) {
	tests := []struct {
		name      string
		setting   *config.RuleSetting
		wantRun   bool
		wantOpts  bool
		checkOpts func(t *testing.T, opts config.RuleOptions)
	}{
		{
			name:    "absent runs with nil options",
			setting: nil,
			wantRun: true,
		},
		{
			name:    "boolean true runs with nil options",
			setting: settingPtr(config.Enable()),
			wantRun: true,
		},
		{
			name:    "boolean false skips entirely",
			setting: settingPtr(config.Disable()),
			wantRun: false,
		},
		{
			name:     "structured options are passed through",
			setting:  settingPtr(config.WithOptions(config.RuleOptions{"style": "ordered"})),
			wantRun:  true,
			wantOpts: true,
			checkOpts: func(t *testing.T, opts config.RuleOptions) {
				assert.Equal(t, "ordered", opts.String("style", ""))
			},
		},
		{
			name:    "structured enabled false skips",
			setting: settingPtr(config.WithOptions(config.RuleOptions{"enabled": false, "style": "ordered"})),
			wantRun: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := newStubRule("MD007", Violation{Line: 1, Rule: "MD007"})
			reg := NewRegistry()
			reg.Register(rule)

			cfg := config.Default()
			if tt.setting != nil {
				cfg.Rules["MD007"] = *tt.setting
			}

			engine := NewEngine(reg, cfg)
			violations := engine.LintContent("text\n")

			if tt.wantRun {
				assert.Equal(t, 1, rule.calls, "rule should have been invoked")
				assert.Len(t, violations, 1)
			} else {
				assert.Zero(t, rule.calls, "disabled rule must never be invoked")
				assert.Empty(t, violations)
			}

			if tt.wantOpts {
				require.NotNil(t, rule.lastOpt)
				tt.checkOpts(t, rule.lastOpt)
			} else if tt.wantRun {
				assert.Nil(t, rule.lastOpt)
			}
		})
	}
}

func TestCLIEnableDisableOverrides(t *testing.T) {
	t.Run("disable wins over config", func(t *testing.T) {
		rule := newStubRule("MD007", Violation{Line: 1, Rule: "MD007"})
		reg := NewRegistry()
		reg.Register(rule)

		cfg := config.Default()
		cfg.Rules["MD007"] = config.Enable()
		cfg.DisableRules = []string{"MD007"}

		NewEngine(reg, cfg).LintContent("text\n")
		assert.Zero(t, rule.calls)
	})

	t.Run("enable wins over config disable", func(t *testing.T) {
		rule := newStubRule("MD007", Violation{Line: 1, Rule: "MD007"})
		reg := NewRegistry()
		reg.Register(rule)

		cfg := config.Default()
		cfg.Rules["MD007"] = config.Disable()
		cfg.EnableRules = []string{"MD007"}

		NewEngine(reg, cfg).LintContent("text\n")
		assert.Equal(t, 1, rule.calls)
	})
}

func TestLintFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("content\n"), 0o644))

	rule := newStubRule("MD001", Violation{Line: 1, Rule: "MD001"})
	reg := NewRegistry()
	reg.Register(rule)

	violations, err := NewEngine(reg, nil).LintFile(path)
	require.NoError(t, err)
	assert.Len(t, violations, 1)

	_, err = NewEngine(reg, nil).LintFile(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestLintResultAggregation(t *testing.T) {
	var result LintResult
	result.Add("a.md", []Violation{{Line: 1, Rule: "MD001"}, {Line: 2, Rule: "MD002"}})
	result.Add("b.md", nil)

	assert.Equal(t, 2, result.TotalViolations)
	assert.Len(t, result.FileResults, 2)
	assert.True(t, result.HasViolations())
}

func settingPtr(s config.RuleSetting) *config.RuleSetting {
	return &s
}
