package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProvider_Complete(t *testing.T) {
	var captured map[string]interface{}
	var authHeader, path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		authHeader = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "git status"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(Options{APIKey: "sk-test", BaseURL: server.URL + "/v1"})
	text, err := provider.Complete(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "git status", text)
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "Bearer sk-test", authHeader)
	assert.Equal(t, "claude-haiku-4-5-20251001", captured["model"])
	assert.Equal(t, float64(1024), captured["max_tokens"])
	assert.Equal(t, server.URL+"/v1/chat/completions", provider.Endpoint())
}

func TestOpenAIProvider_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(Options{APIKey: "k", BaseURL: server.URL})
	_, err := provider.Complete(context.Background(), testRequest())

	var emptyErr *EmptyResponseError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, ProviderOpenAI, emptyErr.Provider)
}

func TestOpenAIProvider_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "requests", "code": "rate_limit"}}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(Options{APIKey: "k", BaseURL: server.URL})
	_, err := provider.Complete(context.Background(), testRequest())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "rate limited", apiErr.Message)
	assert.Equal(t, ProviderOpenAI, apiErr.Provider)
}
