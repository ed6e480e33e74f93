package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kbeaute/backend/internal/domain"
	"github.com/kbeaute/backend/internal/metrics"
)

// DefaultModel is the chat model used when none is configured
const DefaultModel = openai.GPT4Turbo

// Client handles communication with an OpenAI-compatible chat completions API
type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger
	debug  bool
}

// Config holds the chat completions client settings
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

var _ domain.LanguageModel = (*Client)(nil)

// NewClient creates a chat completions client. An empty API key is accepted;
// requests then fail upstream with an authentication error.
func NewClient(cfg *Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		logger: logger,
	}
}

// SetDebug enables or disables prompt/response debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Complete implements domain.LanguageModel with one system and one user message.
// Failures are wrapped with domain.ErrLanguageModelFailure.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	operation := req.Operation
	if operation == "" {
		operation = domain.OperationAnswer
	}

	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	if c.debug {
		c.logger.Debug("language model request",
			zap.String("operation", operation),
			zap.String("model", c.model),
			zap.Int("prompt_length", len(req.UserPrompt)),
		)
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	duration := time.Since(start)

	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(operation, c.model, "error").Inc()
		c.logger.Warn("language model request failed",
			zap.String("operation", operation),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.LLMRequestsTotal.WithLabelValues(operation, c.model, "error").Inc()
		return "", fmt.Errorf("empty completion response: %w", domain.ErrLanguageModelFailure)
	}

	metrics.LLMRequestsTotal.WithLabelValues(operation, c.model, "success").Inc()
	metrics.LLMRequestDuration.WithLabelValues(operation, c.model).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.LLMTokensTotal.WithLabelValues(operation, c.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.LLMTokensTotal.WithLabelValues(operation, c.model, "completion").Add(float64(resp.Usage.CompletionTokens))
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)

	if c.debug {
		c.logger.Debug("language model response",
			zap.String("operation", operation),
			zap.Duration("duration", duration),
			zap.Int("total_tokens", resp.Usage.TotalTokens),
			zap.Int("content_length", len(content)),
		)
	}

	return content, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrLanguageModelFailure for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrLanguageModelFailure

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("chat completion aborted: %w: %w", err, wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("chat completion API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractDetail(reqErr.Body); detail != "" {
			return fmt.Errorf("chat completion API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("chat completion API error %d: %w", reqErr.HTTPStatusCode, wrap)
	}

	return fmt.Errorf("chat completion request failed: %v: %w", err, wrap)
}

// extractDetail extracts the "detail" field from a JSON error body (proxy error format).
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
