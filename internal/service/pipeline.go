package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"paper-summarizer/internal/domain"
	apperrors "paper-summarizer/pkg/errors"

	"github.com/google/uuid"
)

// SummaryPipeline runs upload -> extraction -> summarization -> parsing.
// One call to Run owns its temp file from creation to removal.
type SummaryPipeline struct {
	extractor  domain.TextExtractor
	summarizer domain.Summarizer
	cache      domain.ExtractionCache
	uploadDir  string
	logger     domain.Logger
}

func NewSummaryPipeline(
	extractor domain.TextExtractor,
	summarizer domain.Summarizer,
	cache domain.ExtractionCache,
	uploadDir string,
	logger domain.Logger,
) *SummaryPipeline {
	return &SummaryPipeline{
		extractor:  extractor,
		summarizer: summarizer,
		cache:      cache,
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

// Run processes one uploaded PDF.
func (p *SummaryPipeline) Run(ctx context.Context, upload *domain.Upload) (*domain.SummaryRun, error) {
	runID := uuid.NewString()

	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return nil, apperrors.NewValidationError("Failed to read upload", err.Error())
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("File is empty")
	}

	hash, err := HashContent(data)
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to hash upload", err)
	}

	text, cacheHit := p.cache.Get(hash)
	if !cacheHit {
		text, err = p.extractUpload(runID, data)
		if err != nil {
			return nil, &domain.RunError{FileHash: hash, Err: err}
		}
		text.Metadata.FileSize = int64(len(data))
		if !text.IsEmpty() {
			p.cache.Put(hash, text)
		}
	}

	p.logger.Info("Upload extracted",
		"run_id", runID,
		"file_hash", hash,
		"filename", upload.Filename,
		"cache_hit", cacheHit,
		"pages", text.Metadata.PageCount,
	)

	run, err := p.summarize(ctx, runID, hash, text)
	if err != nil {
		return nil, &domain.RunError{FileHash: hash, Err: err}
	}
	run.Filename = upload.Filename
	run.CacheHit = cacheHit
	return run, nil
}

// Retry re-runs summarization on text cached by an earlier Run. It is the
// only re-invocation point; nothing is retried automatically.
func (p *SummaryPipeline) Retry(ctx context.Context, fileHash string) (*domain.SummaryRun, error) {
	text, ok := p.cache.Get(fileHash)
	if !ok {
		return nil, apperrors.NewNotFoundError("No extracted document for this hash; upload the PDF again",
			fmt.Errorf("%w: %s", domain.ErrRunNotFound, fileHash))
	}

	runID := uuid.NewString()
	p.logger.Info("Retrying summarization", "run_id", runID, "file_hash", fileHash)

	run, err := p.summarize(ctx, runID, fileHash, text)
	if err != nil {
		return nil, &domain.RunError{FileHash: fileHash, Err: err}
	}
	run.CacheHit = true
	return run, nil
}

// Forget drops the cached extraction for fileHash.
func (p *SummaryPipeline) Forget(fileHash string) bool {
	return p.cache.Forget(fileHash)
}

// extractUpload writes data to a temp .pdf file, extracts it and removes
// the file whether or not extraction succeeded.
func (p *SummaryPipeline) extractUpload(runID string, data []byte) (*domain.ExtractedText, error) {
	tmp, err := os.CreateTemp(p.uploadDir, "upload-*.pdf")
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to create temp file", err)
	}
	path := tmp.Name()
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("Failed to remove temp file", "run_id", runID, "path", path, "error", err)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, apperrors.NewInternalError("Failed to write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, apperrors.NewInternalError("Failed to write temp file", err)
	}

	start := time.Now()
	text, err := p.extractor.ExtractFile(path)
	if err != nil {
		p.logger.Error("PDF extraction failed", err, "run_id", runID)
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.NewProcessingError("Failed to extract text from PDF", err)
	}
	p.logger.Debug("PDF extraction finished", "run_id", runID, "duration_ms", time.Since(start).Milliseconds())
	return text, nil
}

func (p *SummaryPipeline) summarize(ctx context.Context, runID, hash string, text *domain.ExtractedText) (*domain.SummaryRun, error) {
	if text.IsEmpty() {
		p.logger.Warn("No extractable text", "run_id", runID, "file_hash", hash)
		return nil, apperrors.NewExtractionEmptyError(domain.ErrNoExtractableText)
	}

	wordCount := CountWords(text.Content)
	p.logger.Info("Summarizing document", "run_id", runID, "words", wordCount)

	res, err := p.summarizer.Summarize(ctx, text.Content)
	if err != nil {
		if errors.Is(err, domain.ErrNoExtractableText) {
			return nil, apperrors.NewExtractionEmptyError(err)
		}
		p.logger.Error("Summarization failed", err, "run_id", runID, "file_hash", hash)
		return nil, err
	}

	summary := ParseSummary(res.Response)
	if !summary.IsComplete() {
		p.logger.Warn("Model output missing abstract", "run_id", runID, "response_chars", len(res.Response))
		return nil, apperrors.NewParseIncompleteError(
			fmt.Errorf("%w: run %s", domain.ErrIncompleteSummary, runID))
	}

	p.logger.Info("Summary generated",
		"run_id", runID,
		"mode", res.Mode,
		"chunks", res.ChunkCount,
		"key_points", len(summary.KeyPoints),
		"keywords", len(summary.Keywords),
	)

	level, _ := summary.DifficultyLevel()

	return &domain.SummaryRun{
		RunID:        runID,
		FileHash:     hash,
		WordCount:    wordCount,
		Mode:         res.Mode,
		ChunkCount:   res.ChunkCount,
		BackendCalls: res.BackendCalls,
		Metadata:     text.Metadata,
		Summary:      summary,
		Difficulty:   level,
		RawResponse:  res.Response,
		CompletedAt:  time.Now(),
	}, nil
}
