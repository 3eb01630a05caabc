// Package config provides configuration management for cjkb.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/cjk-breaks/internal/view"
	"github.com/open-cli-collective/cjk-breaks/pkg/md"
)

// Config holds the cjkb configuration.
type Config struct {
	Either              bool   `yaml:"either,omitempty"`
	NormalizeSoftBreaks bool   `yaml:"normalize_soft_breaks,omitempty"`
	// SpaceAfterPunctuation is "half", "full" or a literal spacing string.
	SpaceAfterPunctuation string `yaml:"space_after_punctuation,omitempty"`
	// PunctuationTargets replaces the default targets when set. An empty
	// list disables punctuation spacing.
	PunctuationTargets         *[]string `yaml:"punctuation_targets,omitempty"`
	PunctuationTargetsDisabled bool      `yaml:"punctuation_targets_disabled,omitempty"`
	PunctuationTargetsAdd      []string  `yaml:"punctuation_targets_add,omitempty"`
	PunctuationTargetsRemove   []string  `yaml:"punctuation_targets_remove,omitempty"`
	OutputFormat               string    `yaml:"output_format,omitempty"`
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.SpaceAfterPunctuation != "" && strings.ContainsAny(c.SpaceAfterPunctuation, "\r\n") {
		return errors.New("space_after_punctuation must not contain line breaks")
	}
	if c.OutputFormat != "" {
		if err := view.ValidateFormat(c.OutputFormat); err != nil {
			return fmt.Errorf("output_format: %w", err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Booleans that do not parse are ignored.
func (c *Config) LoadFromEnv() {
	if v, ok := envBool("CJKB_EITHER"); ok {
		c.Either = v
	}
	if v, ok := envBool("CJKB_NORMALIZE"); ok {
		c.NormalizeSoftBreaks = v
	}
	if space := os.Getenv("CJKB_PUNCT_SPACE"); space != "" {
		c.SpaceAfterPunctuation = space
	}
	if add := envList("CJKB_PUNCT_ADD"); add != nil {
		c.PunctuationTargetsAdd = add
	}
	if remove := envList("CJKB_PUNCT_REMOVE"); remove != nil {
		c.PunctuationTargetsRemove = remove
	}
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// envList splits a comma separated variable, dropping empty entries.
func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// MDOptions converts the configuration into markdown conversion options.
func (c *Config) MDOptions() []md.Option {
	opts := []md.Option{
		md.WithEither(c.Either),
		md.WithNormalizeSoftBreaks(c.NormalizeSoftBreaks),
		md.WithPunctuationSpace(c.SpaceAfterPunctuation),
	}
	if c.PunctuationTargets != nil {
		opts = append(opts, md.WithPunctuationTargets(*c.PunctuationTargets...))
	}
	if c.PunctuationTargetsDisabled {
		opts = append(opts, md.WithPunctuationTargetsDisabled())
	}
	if len(c.PunctuationTargetsAdd) > 0 {
		opts = append(opts, md.WithPunctuationTargetsAdd(c.PunctuationTargetsAdd...))
	}
	if len(c.PunctuationTargetsRemove) > 0 {
		opts = append(opts, md.WithPunctuationTargetsRemove(c.PunctuationTargetsRemove...))
	}
	return opts
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Pick up XDG_CONFIG_HOME changes made after start-up.
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "cjkb", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
