package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap/zapcore"
)

// fileConfig mirrors the on-disk JSON schema. Pointer fields distinguish an
// absent key from an explicit zero value.
type fileConfig struct {
	Model              *string `json:"model"`
	MaxTokens          *int    `json:"max_tokens"`
	HistoryLines       *int    `json:"history_lines"`
	SystemPromptSuffix *string `json:"system_prompt_suffix"`
	SystemPrompt       *string `json:"system_prompt"`

	Provider       *string `json:"provider"`
	BaseURL        *string `json:"base_url"`
	TimeoutSeconds *int    `json:"timeout_seconds"`
	LogLevel       *string `json:"log_level"`
	Journal        *bool   `json:"journal"`
}

// Load reads the config file at path and merges it into the defaults.
// A missing file yields the defaults and no error. A file that exists but
// cannot be read, parsed or validated yields a *ConfigError.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes a JSON config document and applies defaults to every field
// the document leaves out. Unknown fields are ignored.
func Parse(content []byte) (*Config, error) {
	var fc fileConfig
	if err := json.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if err := fc.validate(); err != nil {
		return nil, err
	}

	def := Default()
	return &Config{
		Model:              lo.FromPtrOr(fc.Model, def.Model),
		MaxTokens:          lo.FromPtrOr(fc.MaxTokens, def.MaxTokens),
		HistoryLines:       lo.FromPtrOr(fc.HistoryLines, def.HistoryLines),
		SystemPromptSuffix: fc.SystemPromptSuffix,
		SystemPrompt:       fc.SystemPrompt,
		Provider:           lo.FromPtrOr(fc.Provider, def.Provider),
		BaseURL:            lo.FromPtrOr(fc.BaseURL, def.BaseURL),
		Timeout: lo.Ternary(fc.TimeoutSeconds != nil,
			time.Duration(lo.FromPtr(fc.TimeoutSeconds))*time.Second,
			def.Timeout),
		LogLevel: lo.FromPtrOr(fc.LogLevel, def.LogLevel),
		Journal:  lo.FromPtrOr(fc.Journal, def.Journal),
	}, nil
}

func (fc *fileConfig) validate() error {
	if fc.Model != nil && *fc.Model == "" {
		return errors.New("model must not be empty")
	}
	if fc.MaxTokens != nil && *fc.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", *fc.MaxTokens)
	}
	if fc.HistoryLines != nil && *fc.HistoryLines < 0 {
		return fmt.Errorf("history_lines must not be negative, got %d", *fc.HistoryLines)
	}
	if fc.TimeoutSeconds != nil && *fc.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", *fc.TimeoutSeconds)
	}
	if fc.Provider != nil && !lo.Contains([]string{ProviderAnthropic, ProviderOpenAI}, *fc.Provider) {
		return fmt.Errorf("unknown provider %q (expected %q or %q)", *fc.Provider, ProviderAnthropic, ProviderOpenAI)
	}
	if fc.LogLevel != nil {
		if _, err := zapcore.ParseLevel(*fc.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level: %w", err)
		}
	}
	return nil
}
