package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleSetting is the per-rule configuration variant. A setting carries exactly
// one of two payloads:
//
//   - a bare boolean toggle ("MD013: false" disables the rule outright), or
//   - a structured options mapping whose shape is private to the rule.
//
// An options mapping may contain an "enabled" key; an explicit
// "enabled: false" disables the rule, anything else leaves it enabled.
type RuleSetting struct {
	toggle  *bool
	options RuleOptions
}

// Enable returns a setting equivalent to a bare "true".
func Enable() RuleSetting {
	t := true
	return RuleSetting{toggle: &t}
}

// Disable returns a setting equivalent to a bare "false".
func Disable() RuleSetting {
	f := false
	return RuleSetting{toggle: &f}
}

// WithOptions returns a setting carrying a structured options payload.
func WithOptions(opts RuleOptions) RuleSetting {
	return RuleSetting{options: opts}
}

// Enabled reports whether the rule should run at all.
func (s RuleSetting) Enabled() bool {
	if s.toggle != nil {
		return *s.toggle
	}
	if s.options != nil {
		if v, ok := s.options["enabled"]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return true
}

// Options returns the structured payload to pass to the rule's check.
// Boolean toggles carry no options; the rule runs with its defaults.
func (s RuleSetting) Options() RuleOptions {
	if s.toggle != nil {
		return nil
	}
	return s.options
}

// UnmarshalYAML decodes either a boolean scalar or an options mapping.
func (s *RuleSetting) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var b bool
		if err := value.Decode(&b); err != nil {
			return fmt.Errorf("rule setting must be a boolean or a mapping: %w", err)
		}
		s.toggle = &b
		s.options = nil
		return nil
	case yaml.MappingNode:
		var opts map[string]any
		if err := value.Decode(&opts); err != nil {
			return fmt.Errorf("decode rule options: %w", err)
		}
		s.toggle = nil
		s.options = opts
		return nil
	default:
		return fmt.Errorf("rule setting must be a boolean or a mapping, got %v", value.Kind)
	}
}

// MarshalYAML encodes the setting back into its compact form.
func (s RuleSetting) MarshalYAML() (any, error) {
	if s.toggle != nil {
		return *s.toggle, nil
	}
	if s.options != nil {
		return map[string]any(s.options), nil
	}
	return true, nil
}
