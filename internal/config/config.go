// Package config loads the YAML rule configuration for the treescout
// runner.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleConfig holds per-rule settings.
type RuleConfig struct {
	Enabled *bool `yaml:"enabled"`
	// HandlerCallees adds callee paths the httphandlers rule should treat
	// as registrations (router libraries, wrappers).
	HandlerCallees []string `yaml:"handler_callees,omitempty"`
}

// Config is the on-disk shape of a treescout config file.
type Config struct {
	// Exclude is a comma-separated list of path regexes, same syntax as
	// the -exclude flag. A flag value takes precedence.
	Exclude string `yaml:"exclude"`

	// Format selects the output sink: "text" or "jsonl".
	Format string `yaml:"format"`

	Rules map[string]RuleConfig `yaml:"rules"`
}

var knownRules = map[string]bool{
	"symbols":      true,
	"httphandlers": true,
	"sqlcalls":     true,
	"topdecls":     true,
}

// Load reads a YAML config, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given: every rule
// enabled, text output.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func ApplyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
}

func Validate(cfg *Config) error {
	if cfg.Format != "text" && cfg.Format != "jsonl" {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	for name := range cfg.Rules {
		if !knownRules[name] {
			return fmt.Errorf("unknown rule %q", name)
		}
	}
	return nil
}

// EnabledRules maps the config onto the rule registry's selection: nil
// when no rules section exists (run everything), else the explicit map.
func (c *Config) EnabledRules() map[string]bool {
	if len(c.Rules) == 0 {
		return nil
	}
	out := make(map[string]bool, len(knownRules))
	for name := range knownRules {
		rc, listed := c.Rules[name]
		switch {
		case !listed:
			out[name] = false
		case rc.Enabled == nil:
			out[name] = true // listed without an enabled key means on
		default:
			out[name] = *rc.Enabled
		}
	}
	return out
}

// HandlerCallees collects the extra registration callees across the rules
// section.
func (c *Config) HandlerCallees() []string {
	var out []string
	for _, rc := range c.Rules {
		out = append(out, rc.HandlerCallees...)
	}
	return out
}
