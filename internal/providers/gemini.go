package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyReply is returned when the provider answered without any text
var ErrEmptyReply = errors.New("generative provider response did not contain text")

// GeminiConfig configures the OpenAI-compatible Gemini endpoint
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GeminiClient sends single-prompt completions to Gemini
type GeminiClient struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func NewGeminiClient(cfg GeminiConfig, logger *slog.Logger) *GeminiClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &GeminiClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

// Generate sends prompt as one user message and returns the reply text
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		g.logger.Error("Gemini request failed", "model", g.model, "error", err)
		return "", providerError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyReply
	}

	g.logger.Debug("Gemini request completed",
		"model", g.model,
		"duration", time.Since(start),
		"completion_tokens", resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}

// providerError surfaces the provider's own message when the API returned one
func providerError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("%s: %w", apiErr.Message, err)
	}
	return err
}
