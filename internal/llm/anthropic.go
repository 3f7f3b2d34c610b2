package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	ProviderAnthropic = "anthropic"

	AnthropicKeyEnv     = "ANTHROPIC_API_KEY"
	AnthropicBaseURL    = "https://api.anthropic.com"
	AnthropicAPIVersion = "2023-06-01"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// AnthropicProvider talks to the Anthropic Messages API.
type AnthropicProvider struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAnthropicProvider creates a provider posting to BaseURL + "/v1/messages".
func NewAnthropicProvider(opts Options) *AnthropicProvider {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = AnthropicBaseURL
	}

	return &AnthropicProvider{
		apiKey:     opts.APIKey,
		endpoint:   strings.TrimSuffix(baseURL, "/") + "/v1/messages",
		httpClient: &http.Client{Timeout: opts.timeout()},
		logger:     opts.logger(),
	}
}

func (p *AnthropicProvider) Name() string {
	return ProviderAnthropic
}

func (p *AnthropicProvider) Endpoint() string {
	return p.endpoint
}

type anthropicResponse struct {
	Content    ContentBlocks `json:"content"`
	StopReason string        `json:"stop_reason"`
}

type anthropicErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one POST to the Messages API and returns the first text
// block of the reply.
func (p *AnthropicProvider) Complete(ctx context.Context, request Request) (string, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", AnthropicAPIVersion)
	req.Header.Set("content-type", "application/json")

	p.logger.Debug("sending request",
		zap.String("provider", ProviderAnthropic),
		zap.String("endpoint", p.endpoint),
		zap.String("model", request.Model),
		zap.Int("bodyBytes", len(body)),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", transportError(ProviderAnthropic, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", transportError(ProviderAnthropic, err)
	}

	p.logger.Debug("received response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bodyBytes", len(respBody)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Provider: ProviderAnthropic, StatusCode: resp.StatusCode}
		var errResp anthropicErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			apiErr.Type = errResp.Error.Type
			apiErr.Message = errResp.Error.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return "", apiErr
	}

	var result anthropicResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &APIError{
			Provider:   ProviderAnthropic,
			StatusCode: resp.StatusCode,
			Message:    "malformed response body",
			Err:        err,
		}
	}

	text, ok := result.Content.FirstText()
	if !ok {
		return "", &EmptyResponseError{Provider: ProviderAnthropic}
	}
	return text, nil
}

// transportError wraps a failure that happened before a status code was
// available.
func transportError(provider string, err error) *APIError {
	var netErr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())
	return &APIError{Provider: provider, Timeout: timeout, Err: err}
}
