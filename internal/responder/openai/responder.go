// Package openai provides a responder backed by the OpenAI chat completions API
// using the official SDK.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/semcache/internal/observability"
)

// Responder implements domain.Responder for OpenAI.
type Responder struct {
	client openai.Client
	config Config
}

// NewResponder creates a new OpenAI responder.
func NewResponder(config Config) (*Responder, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if config.Model == "" {
		return nil, errors.New("responder model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Responder{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// Respond sends the query as a single user message and returns the first choice.
func (r *Responder) Respond(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.New("query cannot be empty")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API", observability.String("model", r.config.Model))

	resp, err := r.client.Chat.Completions.New(ctx, r.toSDKParams(query))
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	if len(resp.Choices) == 0 {
		return "", errors.New("OpenAI returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Name returns the responder identifier.
func (r *Responder) Name() string {
	return "openai"
}

// toSDKParams builds the chat request for a single query.
func (r *Responder) toSDKParams(query string) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if r.config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(r.config.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(query))

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(r.config.Model),
		Messages: messages,
	}

	if r.config.Temperature > 0 {
		params.Temperature = openai.Float(r.config.Temperature)
	}

	if r.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(r.config.MaxTokens))
	}

	return params
}
