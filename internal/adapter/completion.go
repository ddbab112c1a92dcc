package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
	"github.com/MKhiriev/levelup-fitness/models"
)

// CompletionError reports a non-2xx response from the completions endpoint.
// The status code and raw body are kept separately because the generation
// pages render them verbatim in the failure marker.
type CompletionError struct {
	Code int
	Body string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion http %d: %s", e.Code, e.Body)
}

type chatCompletionClient struct {
	client *utils.HTTPClient

	apiKey      string
	model       string
	temperature float64
	maxTokens   int

	logger *logger.Logger
}

// NewCompletionClient constructs a [CompletionClient] talking to an
// OpenAI-compatible chat-completions endpoint (Groq in the default config).
// The base URL is normalised the same way as the server adapter's; the
// request timeout comes from cfg.RequestTimeout because generations run far
// longer than ordinary API calls.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewCompletionClient(cfg config.Completion, logger *logger.Logger) (CompletionClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid completion base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &chatCompletionClient{
		client:      client,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger,
	}, nil
}

// Complete implements [CompletionClient]. It POSTs a system+user message pair
// to POST {base}/chat/completions and returns the trimmed text of the first
// choice. An empty model falls back to the configured default. Non-2xx
// responses come back as a [*CompletionError] carrying the status code and
// body; transport failures and malformed responses as ordinary wrapped
// errors.
func (c *chatCompletionClient) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	if model == "" {
		model = c.model
	}

	body := models.ChatCompletionRequest{
		Model: model,
		Messages: []models.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	c.logger.Debug().Str("model", model).Msg("requesting completion")

	var result models.ChatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &CompletionError{
			Code: resp.StatusCode(),
			Body: strings.TrimSpace(string(resp.Body())),
		}
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
