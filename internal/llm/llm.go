// Package llm holds the hosted chat model backends used for summarization.
package llm

import (
	"context"
	"fmt"

	"paper-summarizer/internal/domain"
)

// SystemPrompt frames every request as structured research-paper analysis.
const SystemPrompt = "You are an expert research paper analysis assistant.\n" +
	"You produce highly structured academic summaries with:\n" +
	"1. Abstract-level summary\n" +
	"2. 10 key points\n" +
	"3. Keyword list\n" +
	"4. Technical difficulty (1-10)\n" +
	"5. Sentiment (neutral, critical, positive)\n" +
	"Always return clean, formatted academic output."

// Backend is a Completer that owns resources released on shutdown.
type Backend interface {
	domain.Completer
	Name() string
	Close() error
}

// New builds the backend selected by LLM_PROVIDER.
func New(ctx context.Context, cfg domain.Config, logger domain.Logger) (Backend, error) {
	switch cfg.GetLLMProvider() {
	case "groq", "openai":
		return NewOpenAIClient(OpenAIOptions{
			Provider:    cfg.GetLLMProvider(),
			BaseURL:     cfg.GetLLMBaseURL(),
			APIKey:      cfg.GetLLMAPIKey(),
			Model:       cfg.GetLLMModel(),
			Temperature: cfg.GetLLMTemperature(),
			MaxTokens:   cfg.GetLLMMaxTokens(),
			Timeout:     cfg.GetLLMTimeout(),
		}, logger)
	case "vertex":
		return NewVertexClient(ctx, VertexOptions{
			ProjectID:   cfg.GetGCPProjectID(),
			Location:    cfg.GetGCPLocation(),
			Model:       cfg.GetLLMModel(),
			Temperature: cfg.GetLLMTemperature(),
			MaxTokens:   cfg.GetLLMMaxTokens(),
		}, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.GetLLMProvider())
	}
}
