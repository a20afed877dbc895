package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "SQUADS_"

// Load builds a Config by layering defaults, optional file, env vars and
// explicit overrides. Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SQUADS_CONFIG is set
//  3. env (prefix SQUADS_)
//  4. overrides, keyed by koanf tag (the CLI passes only flags the user set)
func Load(ctx context.Context, overrides map[string]any) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Map env keys like SQUADS_GROUP_SIZE -> group_size (flat keys).
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, key, err)
		}
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input must not be empty", ErrInvalidConfig)
	case c.Taxonomy == "":
		return fmt.Errorf("%w: taxonomy must not be empty", ErrInvalidConfig)
	case c.GroupSize <= 0:
		return fmt.Errorf("%w: group_size must be positive, got %d", ErrInvalidConfig, c.GroupSize)
	}

	switch strings.ToLower(c.Key) {
	case "email", "id":
	default:
		return fmt.Errorf("%w: key must be email or id, got %q", ErrInvalidConfig, c.Key)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "pretty":
	default:
		return fmt.Errorf("%w: log_format must be text, json or pretty, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// OutputDir resolves where output.json goes: the configured directory or,
// when unset, a directory named after the input file up to its first dot.
func (c *Config) OutputDir() string {
	if c.Output != "" {
		return filepath.Clean(c.Output)
	}
	name, _, _ := strings.Cut(filepath.Base(c.Input), ".")
	if name == "" {
		return "."
	}
	return name
}
