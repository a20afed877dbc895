// Package config defines the tool configuration and its loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - All functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text, json or pretty.
	LogFormat string `koanf:"log_format"`

	// Input is the survey CSV path.
	Input string `koanf:"input"`

	// Output is the directory output.json is written to. Empty means a
	// directory named after the input file.
	Output string `koanf:"output"`

	// Taxonomy is the JSON or YAML taxonomy path.
	Taxonomy string `koanf:"taxonomy"`

	// GroupSize is the maximum number of members per group.
	GroupSize int `koanf:"group_size"`

	// Key selects the unique member identifier: email or id.
	Key string `koanf:"key"`

	// Heuristic names the assignment strategy: naive, language, framework,
	// experience or magic. Unknown names fall back to naive.
	Heuristic string `koanf:"heuristic"`

	// MetricsFile, when set, receives a prometheus textfile dump after the run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config populated with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		GroupSize: 3,
		Key:       "email",
		Heuristic: "naive",
	}
}
