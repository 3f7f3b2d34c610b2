// Package llm sends a single prompt to a chat model and returns its text reply.
package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a request when Options.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// Provider sends one request to a model provider. Implementations make a
// single attempt and never retry.
type Provider interface {
	// Name returns the provider name ("anthropic", "openai")
	Name() string

	// Endpoint returns the URL the request will be sent to
	Endpoint() string

	// Complete sends the request and returns the text of the reply
	Complete(ctx context.Context, request Request) (string, error)
}

// Request is a provider-neutral chat request.
type Request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options configures a provider.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// CredentialsEnv returns the environment variable holding the API key for
// the named provider.
func CredentialsEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return OpenAIKeyEnv
	default:
		return AnthropicKeyEnv
	}
}

// LookupAPIKey reads the provider's API key through getenv. It fails with a
// *MissingCredentialsError when the variable is unset or empty.
func LookupAPIKey(provider string, getenv func(string) string) (string, error) {
	envVar := CredentialsEnv(provider)
	apiKey := getenv(envVar)
	if apiKey == "" {
		return "", &MissingCredentialsError{EnvVar: envVar}
	}
	return apiKey, nil
}

// NewProvider creates the provider registered under name.
func NewProvider(name string, opts Options) (Provider, error) {
	switch name {
	case ProviderAnthropic:
		return NewAnthropicProvider(opts), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(opts), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
