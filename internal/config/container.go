package config

import (
	"context"
	"fmt"

	"paper-summarizer/internal/domain"
	"paper-summarizer/internal/llm"
	"paper-summarizer/internal/service"
	"paper-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config     domain.Config
	Logger     domain.Logger
	Backend    llm.Backend
	Extractor  *service.PDFExtractor
	Summarizer *service.SummaryService
	Cache      *service.ExtractionCache
	Pipeline   *service.SummaryPipeline
}

// NewContainer creates a new dependency injection container. The model
// backend is created here once and shared by every request.
func NewContainer(ctx context.Context) (*Container, error) {
	config := NewConfig()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	appLogger := logger.NewLogger(config.GetLogLevel())

	backend, err := llm.New(ctx, config, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s backend: %w", config.GetLLMProvider(), err)
	}

	extractor := service.NewPDFExtractor(appLogger)
	summarizer := service.NewSummaryService(backend, service.SummarizerOptions{
		Mode:           config.GetSummaryMode(),
		ChunkWords:     config.GetChunkWords(),
		ChunkThreshold: config.GetChunkThreshold(),
	}, appLogger)
	cache := service.NewExtractionCache(config.GetCacheTTL(), config.GetCacheSize())
	pipeline := service.NewSummaryPipeline(extractor, summarizer, cache, config.GetUploadPath(), appLogger)

	appLogger.Info("Container initialized",
		"provider", backend.Name(),
		"summary_mode", config.GetSummaryMode(),
		"chunk_words", config.GetChunkWords(),
	)

	return &Container{
		Config:     config,
		Logger:     appLogger,
		Backend:    backend,
		Extractor:  extractor,
		Summarizer: summarizer,
		Cache:      cache,
		Pipeline:   pipeline,
	}, nil
}

// Close releases the model backend
func (c *Container) Close() error {
	if c.Backend == nil {
		return nil
	}
	return c.Backend.Close()
}
