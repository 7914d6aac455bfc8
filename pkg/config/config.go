// Package config defines core configuration types for mdlint.
// These types are pure data structures; discovery and file parsing live in
// internal/configloader.
package config

// OutputFormat specifies the output format for lint results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatJUnit OutputFormat = "junit"
	FormatSARIF OutputFormat = "sarif"
)

// IsValid returns true if the output format is one of the supported formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatJUnit, FormatSARIF:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for mdlint.
type Config struct {
	// Rules contains per-rule settings keyed by rule ID.
	// A rule absent from the map runs with its defaults.
	Rules map[string]RuleSetting `yaml:"rules"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-"`

	// DryRun computes fixes without writing files.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers (0 = NumCPU).
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to force-enable from the CLI.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to force-disable from the CLI.
	DisableRules []string `yaml:"-"`
}

// Default returns a Config with no per-rule settings and text output.
func Default() *Config {
	return &Config{
		Rules:  make(map[string]RuleSetting),
		Format: FormatText,
	}
}

// Setting returns the setting for a rule ID and whether one was present.
// Safe to call on a nil Config.
func (c *Config) Setting(ruleID string) (RuleSetting, bool) {
	if c == nil || c.Rules == nil {
		return RuleSetting{}, false
	}
	s, ok := c.Rules[ruleID]
	return s, ok
}
