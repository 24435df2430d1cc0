package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/semcache/internal/responder/openai"
)

func TestNewResponder_Success(t *testing.T) {
	responder, err := openai.NewResponder(openai.Config{
		APIKey:     "test-api-key",
		BaseURL:    "https://api.openai.com/v1",
		Timeout:    60,
		MaxRetries: 3,
		Model:      "gpt-4o-mini",
	})

	require.NoError(t, err)
	require.NotNil(t, responder)
	require.Equal(t, "openai", responder.Name())
}

func TestNewResponder_MissingAPIKey(t *testing.T) {
	responder, err := openai.NewResponder(openai.Config{Model: "gpt-4o-mini"})

	require.Error(t, err)
	require.Nil(t, responder)
	require.Contains(t, err.Error(), "OpenAI API key is required")
}

func TestNewResponder_MissingModel(t *testing.T) {
	_, err := openai.NewResponder(openai.Config{APIKey: "test-key"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "responder model is required")
}

func TestResponder_Respond(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "gpt-4o-mini", body["model"])

		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": "Paris"},
			}},
			"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 1, "total_tokens": 13},
		})
	}))
	defer server.Close()

	responder, err := openai.NewResponder(openai.Config{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		Model:        "gpt-4o-mini",
		SystemPrompt: "Answer farming questions briefly.",
	})
	require.NoError(t, err)

	response, err := responder.Respond(context.Background(), "What is the capital of France?")
	require.NoError(t, err)
	require.Equal(t, "Paris", response)
}

func TestResponder_RespondAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	responder, err := openai.NewResponder(openai.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
	})
	require.NoError(t, err)

	_, err = responder.Respond(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "OpenAI API call failed")
}
