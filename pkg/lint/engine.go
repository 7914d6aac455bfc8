package lint

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
)

// Engine runs one document through the enabled rule set. It is pure given an
// immutable config and registry: LintContent performs no I/O and never
// branches on rule identity, only on the per-rule enablement decision, so
// adding a rule requires no engine change.
type Engine struct {
	registry *Registry
	cfg      *config.Config
}

// NewEngine creates an Engine over the given registry and configuration.
// cfg may be nil, in which case every rule runs with its defaults.
func NewEngine(registry *Registry, cfg *config.Config) *Engine {
	return &Engine{registry: registry, cfg: cfg}
}

// Registry returns the engine's rule registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Config returns the engine's configuration (may be nil).
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// LintContent builds one document model and runs every enabled rule against
// it. The returned violations are sorted ascending by line; ties keep the
// rules' emission order (stable sort).
func (e *Engine) LintContent(content string) []Violation {
	doc := document.New(content)

	var all []Violation
	for _, rule := range e.registry.Rules() {
		opts, enabled := e.resolve(rule.ID())
		if !enabled {
			continue
		}
		all = append(all, rule.Check(doc, opts)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Line < all[j].Line
	})

	return all
}

// LintFile reads a file and lints its content.
func (e *Engine) LintFile(path string) ([]Violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return e.LintContent(string(raw)), nil
}

// resolve performs the per-rule enablement decision:
//
//   - CLI force-disable wins outright, then CLI force-enable.
//   - Rule absent from config: run with nil options (rule defaults).
//   - Boolean true: run with nil options.
//   - Boolean false: skip entirely (no violations, no cost).
//   - Structured options: skip iff the payload carries "enabled: false",
//     otherwise pass the payload to the rule.
func (e *Engine) resolve(ruleID string) (config.RuleOptions, bool) {
	if e.cfg != nil {
		if slices.Contains(e.cfg.DisableRules, ruleID) {
			return nil, false
		}
		if slices.Contains(e.cfg.EnableRules, ruleID) {
			setting, ok := e.cfg.Setting(ruleID)
			if ok {
				return setting.Options(), true
			}
			return nil, true
		}
	}

	setting, ok := e.cfg.Setting(ruleID)
	if !ok {
		return nil, true
	}
	if !setting.Enabled() {
		return nil, false
	}
	return setting.Options(), true
}
