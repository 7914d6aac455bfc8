// Package configloader discovers and loads the tool configuration: an
// explicit --config path, or a project .mdlint.yaml found by searching
// upward from the working directory, merged with CLI flag overrides.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swanysimon/mdlint/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is a config file path from the --config flag. When set,
	// project discovery is skipped and the file must exist.
	ExplicitPath string

	// CLI holds flag-level overrides applied on top of the file config.
	CLI *config.Config
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Path is the config file that was loaded, empty when running on
	// defaults alone.
	Path string
}

// Load resolves the final configuration. Precedence, highest first: CLI
// flags, explicit config file, discovered project config, defaults. Config
// file errors are fatal; a missing discovered config is not.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.Default()}

	path := opts.ExplicitPath
	if path == "" {
		discovered, err := FindProjectConfig(ctx, opts.WorkingDir)
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	if path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		result.Config = fileCfg
		result.Path = path
	}

	applyCLI(result.Config, opts.CLI)

	if result.Config.Format != "" && !result.Config.Format.IsValid() {
		return nil, fmt.Errorf("unsupported output format: %s", result.Config.Format)
	}
	return result, nil
}

func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := config.Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleSetting)
	}
	return cfg, nil
}

// applyCLI layers flag-level overrides onto cfg. Enable and disable flags
// become per-rule settings so the engine needs no special casing.
func applyCLI(cfg, cli *config.Config) {
	if cli == nil {
		return
	}

	if cli.Fix {
		cfg.Fix = true
	}
	if cli.DryRun {
		cfg.DryRun = true
	}
	if cli.Format != "" {
		cfg.Format = cli.Format
	}
	if cli.Jobs > 0 {
		cfg.Jobs = cli.Jobs
	}
	cfg.Ignore = append(cfg.Ignore, cli.Ignore...)

	for _, id := range cli.EnableRules {
		// Keep the file's options when the rule is already enabled.
		if s, ok := cfg.Rules[id]; ok && s.Enabled() {
			continue
		}
		cfg.Rules[id] = config.Enable()
	}
	for _, id := range cli.DisableRules {
		cfg.Rules[id] = config.Disable()
	}
	cfg.EnableRules = cli.EnableRules
	cfg.DisableRules = cli.DisableRules
}
