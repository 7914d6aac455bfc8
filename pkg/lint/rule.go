package lint

import (
	"github.com/swanysimon/mdlint/pkg/config"
	"github.com/swanysimon/mdlint/pkg/document"
)

// Rule defines the contract every lint check implements.
//
// Check must be a total function over its inputs: no I/O, no mutation of the
// document or of shared state, and no failure modes beyond programming
// defects. The engine deliberately does not contain rule panics; a defect in
// a rule should fail the run loudly rather than be silently swallowed.
type Rule interface {
	// ID returns the stable identifier for this rule (e.g., "MD009").
	ID() string

	// Description returns a human-readable description of the check.
	Description() string

	// Tags returns categorization labels for this rule.
	Tags() []string

	// Fixable returns whether this rule can attach fixes to its violations.
	Fixable() bool

	// Check runs the rule against a document. opts is the rule's structured
	// configuration, nil when the rule runs with its defaults; its shape is
	// private to the rule.
	Check(doc *document.Document, opts config.RuleOptions) []Violation
}

// BaseRule provides the metadata half of the Rule interface. Embed it in
// rule implementations and implement Check.
type BaseRule struct {
	id      string
	desc    string
	tags    []string
	fixable bool
}

// NewBaseRule creates a BaseRule with the given metadata.
func NewBaseRule(id, desc string, tags []string, fixable bool) BaseRule {
	return BaseRule{
		id:      id,
		desc:    desc,
		tags:    tags,
		fixable: fixable,
	}
}

// ID returns the stable identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Description returns a human-readable description of the check.
func (r *BaseRule) Description() string {
	return r.desc
}

// Tags returns categorization labels for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Fixable returns whether this rule can attach fixes to its violations.
func (r *BaseRule) Fixable() bool {
	return r.fixable
}
