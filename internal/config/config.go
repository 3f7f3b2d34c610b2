// Package config loads the llm-exec configuration file.
//
// The file is an optional JSON object. Every field is optional and falls back
// to its documented default independently, so a file containing only
// {"history_lines": 20} is a valid partial override.
package config

import (
	"fmt"
	"time"
)

const (
	DefaultModel          = "claude-haiku-4-5-20251001"
	DefaultMaxTokens      = 1024
	DefaultHistoryLines   = 100
	DefaultProvider       = ProviderAnthropic
	DefaultTimeoutSeconds = 60
	DefaultLogLevel       = "info"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config is the resolved configuration. It is built once at startup and
// not modified afterward.
type Config struct {
	Model        string
	MaxTokens    int
	HistoryLines int

	// SystemPromptSuffix is appended to the built-in system prompt.
	// Ignored when SystemPrompt is set.
	SystemPromptSuffix *string

	// SystemPrompt replaces the built-in system prompt entirely.
	SystemPrompt *string

	Provider string
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
	Journal  bool
}

// Default returns a Config holding the documented defaults.
func Default() *Config {
	return &Config{
		Model:        DefaultModel,
		MaxTokens:    DefaultMaxTokens,
		HistoryLines: DefaultHistoryLines,
		Provider:     DefaultProvider,
		Timeout:      DefaultTimeoutSeconds * time.Second,
		LogLevel:     DefaultLogLevel,
		Journal:      true,
	}
}

// ConfigError reports a config file that exists but cannot be used.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
