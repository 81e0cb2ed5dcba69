package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paper-summarizer/internal/domain"

	"github.com/sashabaranov/go-openai"
)

// OpenAIOptions configures an OpenAI-compatible chat completions client.
type OpenAIOptions struct {
	Provider    string
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// OpenAIClient talks to any OpenAI-compatible chat completions API
// (Groq by default).
type OpenAIClient struct {
	opts       OpenAIOptions
	client     *openai.Client
	httpClient *http.Client
	logger     domain.Logger
}

func NewOpenAIClient(opts OpenAIOptions, logger domain.Logger) (*OpenAIClient, error) {
	if opts.BaseURL == "" || opts.APIKey == "" {
		return nil, fmt.Errorf("LLM base URL and API key are required")
	}
	if opts.Provider == "" {
		opts.Provider = "openai"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}

	httpClient := &http.Client{Timeout: opts.Timeout}

	config := openai.DefaultConfig(opts.APIKey)
	config.BaseURL = apiBaseURL(opts.BaseURL)
	config.HTTPClient = httpClient

	return &OpenAIClient{
		opts:       opts,
		client:     openai.NewClientWithConfig(config),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// apiBaseURL accepts either the API root or a full chat completions URL.
func apiBaseURL(url string) string {
	url = strings.TrimRight(url, "/")
	return strings.TrimSuffix(url, "/chat/completions")
}

func (c *OpenAIClient) Name() string { return c.opts.Provider }

func (c *OpenAIClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Complete sends a single-turn chat request and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(c.opts.Temperature),
		MaxTokens:   c.opts.MaxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			c.logger.Warn("LLM API error",
				"provider", c.opts.Provider,
				"status", apiErr.HTTPStatusCode,
				"type", apiErr.Type,
			)
		}
		return "", fmt.Errorf("%s chat completion: %w", c.opts.Provider, err)
	}

	c.logger.Debug("LLM call finished",
		"provider", c.opts.Provider,
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from LLM")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from LLM")
	}
	return content, nil
}
