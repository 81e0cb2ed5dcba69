package llm

import (
	"context"
	"fmt"
	"math"
	"strings"

	"paper-summarizer/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

// VertexOptions configures the Vertex AI Gemini backend.
type VertexOptions struct {
	ProjectID   string
	Location    string
	Model       string
	Temperature float64
	MaxTokens   int
}

// VertexClient completes prompts with a Gemini model on Vertex AI.
// Credentials come from Application Default Credentials.
type VertexClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger domain.Logger
}

func NewVertexClient(ctx context.Context, opts VertexOptions, logger domain.Logger) (*VertexClient, error) {
	client, err := genai.NewClient(ctx, opts.ProjectID, opts.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SetTemperature(float32(opts.Temperature))
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(clampInt32(opts.MaxTokens))
	}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemPrompt)},
	}

	return &VertexClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (c *VertexClient) Name() string { return "vertex" }

func (c *VertexClient) Close() error {
	return c.client.Close()
}

func (c *VertexClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from LLM")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	if resp.UsageMetadata != nil {
		c.logger.Debug("LLM call finished",
			"provider", "vertex",
			"prompt_tokens", resp.UsageMetadata.PromptTokenCount,
			"completion_tokens", resp.UsageMetadata.CandidatesTokenCount,
		)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from LLM")
	}
	return text, nil
}

func clampInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int32(n)
}
