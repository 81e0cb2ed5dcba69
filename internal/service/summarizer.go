package service

import (
	"context"
	"fmt"
	"strings"

	"paper-summarizer/internal/domain"
	apperrors "paper-summarizer/pkg/errors"
)

// SummarizerOptions controls mode selection and chunk sizing.
type SummarizerOptions struct {
	Mode           domain.SummaryMode
	ChunkWords     int
	ChunkThreshold int
}

// SummaryService sends document text to the model backend. It is built once
// at startup and shared by every request.
type SummaryService struct {
	completer domain.Completer
	opts      SummarizerOptions
	logger    domain.Logger
}

func NewSummaryService(completer domain.Completer, opts SummarizerOptions, logger domain.Logger) *SummaryService {
	if opts.ChunkWords <= 0 {
		opts.ChunkWords = DefaultChunkWords
	}
	if opts.Mode == "" {
		opts.Mode = domain.SummaryModeAuto
	}
	return &SummaryService{
		completer: completer,
		opts:      opts,
		logger:    logger,
	}
}

// Summarize returns the raw model response for text. Blank text returns
// domain.ErrNoExtractableText without calling the backend. Backend failures
// come back as backend AppErrors and are never retried here.
func (s *SummaryService) Summarize(ctx context.Context, text string) (*domain.SummaryResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrNoExtractableText
	}

	mode := s.resolveMode(text)
	if mode == domain.SummaryModeChunked {
		return s.summarizeChunked(ctx, text)
	}
	return s.summarizeDirect(ctx, text)
}

func (s *SummaryService) resolveMode(text string) domain.SummaryMode {
	switch s.opts.Mode {
	case domain.SummaryModeDirect, domain.SummaryModeChunked:
		return s.opts.Mode
	}
	if s.opts.ChunkThreshold > 0 && CountWords(text) > s.opts.ChunkThreshold {
		return domain.SummaryModeChunked
	}
	return domain.SummaryModeDirect
}

func (s *SummaryService) summarizeDirect(ctx context.Context, text string) (*domain.SummaryResult, error) {
	resp, err := s.completer.Complete(ctx, StructuredPrompt(text))
	if err != nil {
		return nil, apperrors.NewBackendError("summarization request failed", err)
	}
	return &domain.SummaryResult{
		Response:     resp,
		Mode:         domain.SummaryModeDirect,
		ChunkCount:   0,
		BackendCalls: 1,
	}, nil
}

// summarizeChunked summarizes each chunk in order, one call at a time, then
// issues a single combining call over the joined chunk summaries.
func (s *SummaryService) summarizeChunked(ctx context.Context, text string) (*domain.SummaryResult, error) {
	chunks := ChunkText(text, s.opts.ChunkWords)
	summaries := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		s.logger.Debug("Summarizing chunk", "chunk", i+1, "total", len(chunks), "words", CountWords(chunk))

		resp, err := s.completer.Complete(ctx, ChunkPrompt(i+1, len(chunks), chunk))
		if err != nil {
			return nil, apperrors.NewBackendError(
				fmt.Sprintf("summarization of chunk %d/%d failed", i+1, len(chunks)), err)
		}
		summaries = append(summaries, strings.TrimSpace(resp))
	}

	combined := strings.Join(summaries, "\n")
	resp, err := s.completer.Complete(ctx, CombinedPrompt(combined))
	if err != nil {
		return nil, apperrors.NewBackendError("combining chunk summaries failed", err)
	}

	return &domain.SummaryResult{
		Response:     resp,
		Mode:         domain.SummaryModeChunked,
		ChunkCount:   len(chunks),
		BackendCalls: len(chunks) + 1,
	}, nil
}
