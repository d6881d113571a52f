// Package llm wraps the outbound chat-completion call to the quiz model.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"notes-quiz/internal/config"
	"notes-quiz/internal/domain"
	"notes-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// Client sends a single blocking chat-completion request per pipeline run.
// Retries, if any, belong to the caller.
type Client struct {
	model       llms.Model
	maxTokens   int
	temperature float64
}

// New builds a client against an OpenAI-compatible endpoint (OpenRouter by
// default). The request is JSON-hinted and capped so one oversized answer
// cannot run away with the token budget.
func New(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is not configured (set OPENROUTER_API_KEY)")
	}

	httpClient := &http.Client{Timeout: 2 * time.Minute}
	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Client{
		model:       model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Model exposes the underlying chat model for collaborators that need
// multimodal calls (the chat OCR engine).
func (c *Client) Model() llms.Model {
	return c.model
}

// Complete sends the system and user messages and returns the raw response
// text. Provider failures surface as UpstreamError with the provider's
// message attached for diagnostics.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	start := time.Now()

	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, user),
	}

	resp, err := c.model.GenerateContent(ctx, content,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
		llms.WithJSONMode(),
	)
	if err != nil {
		logger.Get().Error("LLM request failed",
			zap.Error(err),
			zap.Duration("took", time.Since(start)))
		return "", domain.NewUpstreamError(fmt.Sprintf("Quiz model request failed: %v", err), err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewUpstreamError("Quiz model returned no choices.", nil)
	}

	logger.Get().Info("LLM request finished",
		zap.Duration("took", time.Since(start)),
		zap.Int("response_chars", len(resp.Choices[0].Content)))
	return resp.Choices[0].Content, nil
}
