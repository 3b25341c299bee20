// Package genai wraps the chat-completion client used by the career
// assist features.
package genai

import (
	"context"
	"fmt"
	"time"

	"nnrgconnect/internal/config"
	"nnrgconnect/internal/middleware"
	"nnrgconnect/internal/observability"

	"github.com/sashabaranov/go-openai"
)

// TextGenerator produces a completion for a single prompt. The feature
// label feeds the generation metrics.
type TextGenerator interface {
	Generate(ctx context.Context, feature, prompt string) (string, error)
}

type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a generator from configuration. AIBaseURL lets the
// deployment point at any OpenAI-compatible endpoint.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.AIAPIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY not set")
	}

	model := cfg.AIModel
	if model == "" {
		model = "gpt-4o-mini"
		middleware.Logger.Warn("AI_MODEL not set, defaulting to gpt-4o-mini")
	}

	var inner *openai.Client
	if cfg.AIBaseURL != "" {
		clientCfg := openai.DefaultConfig(cfg.AIAPIKey)
		clientCfg.BaseURL = cfg.AIBaseURL
		inner = openai.NewClientWithConfig(clientCfg)
	} else {
		inner = openai.NewClient(cfg.AIAPIKey)
	}

	middleware.Logger.Info("Initialized generation client", "model", model)
	return &Client{client: inner, model: model}, nil
}

func (c *Client) Generate(ctx context.Context, feature, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	observability.GenerationLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.GenerationRequests.WithLabelValues(feature, "error").Inc()
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		observability.GenerationRequests.WithLabelValues(feature, "empty").Inc()
		return "", fmt.Errorf("chat completion returned no choices")
	}

	observability.GenerationRequests.WithLabelValues(feature, "success").Inc()
	return resp.Choices[0].Message.Content, nil
}
