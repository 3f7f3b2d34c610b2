package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	ProviderOpenAI = "openai"

	OpenAIKeyEnv = "OPENAI_API_KEY"
)

// OpenAIProvider talks to any OpenAI-compatible chat completions endpoint.
type OpenAIProvider struct {
	client   *openai.Client
	endpoint string
	logger   *zap.Logger
}

// NewOpenAIProvider creates a provider for BaseURL, defaulting to the
// public OpenAI API.
func NewOpenAIProvider(opts Options) *OpenAIProvider {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.timeout()}

	return &OpenAIProvider{
		client:   openai.NewClientWithConfig(cfg),
		endpoint: cfg.BaseURL + "/chat/completions",
		logger:   opts.logger(),
	}
}

func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

func (p *OpenAIProvider) Endpoint() string {
	return p.endpoint
}

// Complete sends one chat completion request and returns the content of the
// first choice that has any.
func (p *OpenAIProvider) Complete(ctx context.Context, request Request) (string, error) {
	p.logger.Debug("sending request",
		zap.String("provider", ProviderOpenAI),
		zap.String("endpoint", p.endpoint),
		zap.String("model", request.Model),
	)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     request.Model,
		MaxTokens: request.MaxTokens,
		Messages: lo.Map(request.Messages, func(m Message, _ int) openai.ChatCompletionMessage {
			return openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
		}),
	})
	if err != nil {
		return "", openAIError(err)
	}

	p.logger.Debug("received response", zap.Int("choices", len(resp.Choices)))

	for _, choice := range resp.Choices {
		if choice.Message.Content != "" {
			return choice.Message.Content, nil
		}
	}
	return "", &EmptyResponseError{Provider: ProviderOpenAI}
}

func openAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Provider:   ProviderOpenAI,
			StatusCode: apiErr.HTTPStatusCode,
			Type:       apiErr.Type,
			Message:    apiErr.Message,
			Err:        err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &APIError{
			Provider:   ProviderOpenAI,
			StatusCode: reqErr.HTTPStatusCode,
			Message:    reqErr.HTTPStatus,
			Err:        err,
		}
	}

	return transportError(ProviderOpenAI, err)
}
