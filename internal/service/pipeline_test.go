package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"paper-summarizer/internal/domain"
	apperrors "paper-summarizer/pkg/errors"
)

func newTestPipeline(t *testing.T, extractor *MockExtractor, completer *MockCompleter) (*SummaryPipeline, *ExtractionCache, string) {
	t.Helper()
	dir := t.TempDir()
	cache := NewExtractionCache(time.Hour, 8)
	logger := NewMockLogger()
	summarizer := NewSummaryService(completer, SummarizerOptions{Mode: domain.SummaryModeDirect}, logger)
	return NewSummaryPipeline(extractor, summarizer, cache, dir, logger), cache, dir
}

func upload(content string) *domain.Upload {
	return &domain.Upload{
		Filename: "paper.pdf",
		Size:     int64(len(content)),
		Reader:   bytes.NewReader([]byte(content)),
	}
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected temp files to be removed, found %d", len(entries))
	}
}

func TestSummaryPipeline_Run(t *testing.T) {
	extractor := &MockExtractor{text: "Parsing model output with header markers.\n"}
	completer := StaticCompleter(sampleResponse)
	p, _, dir := newTestPipeline(t, extractor, completer)

	run, err := p.Run(context.Background(), upload("%PDF-1.4 paper"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if run.Summary.Abstract != "Hello world." {
		t.Fatalf("unexpected abstract: %q", run.Summary.Abstract)
	}
	if run.Difficulty != 7 {
		t.Fatalf("expected difficulty level 7, got %d", run.Difficulty)
	}
	if run.WordCount != 6 {
		t.Fatalf("expected 6 words, got %d", run.WordCount)
	}
	if run.Filename != "paper.pdf" || run.FileHash == "" || run.RunID == "" {
		t.Fatalf("unexpected run envelope: %+v", run)
	}
	if run.CacheHit {
		t.Fatalf("first run should not be a cache hit")
	}
	if len(extractor.paths) != 1 || filepath.Ext(extractor.paths[0]) != ".pdf" {
		t.Fatalf("expected extraction from a .pdf temp file, got %v", extractor.paths)
	}
	if filepath.Dir(extractor.paths[0]) != dir {
		t.Fatalf("expected temp file in %s, got %s", dir, extractor.paths[0])
	}
	assertDirEmpty(t, dir)
}

func TestSummaryPipeline_CacheHitSkipsExtraction(t *testing.T) {
	extractor := &MockExtractor{text: "some text"}
	completer := StaticCompleter(sampleResponse)
	p, _, _ := newTestPipeline(t, extractor, completer)

	first, err := p.Run(context.Background(), upload("%PDF same bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.Run(context.Background(), upload("%PDF same bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extractor.Calls() != 1 {
		t.Fatalf("expected one extraction, got %d", extractor.Calls())
	}
	if !second.CacheHit || second.FileHash != first.FileHash {
		t.Fatalf("expected cache hit with same hash, got %+v", second)
	}
	if completer.Calls() != 2 {
		t.Fatalf("expected summaries to be regenerated, got %d calls", completer.Calls())
	}
}

func TestSummaryPipeline_ExtractionEmpty(t *testing.T) {
	extractor := &MockExtractor{text: "  \n"}
	completer := StaticCompleter(sampleResponse)
	p, cache, dir := newTestPipeline(t, extractor, completer)

	_, err := p.Run(context.Background(), upload("%PDF scanned"))
	if !apperrors.IsType(err, apperrors.ErrorTypeExtractionEmpty) {
		t.Fatalf("expected extraction_empty, got %v", err)
	}
	if !errors.Is(err, domain.ErrNoExtractableText) {
		t.Fatalf("expected ErrNoExtractableText cause, got %v", err)
	}
	if completer.Calls() != 0 {
		t.Fatalf("expected no backend calls, got %d", completer.Calls())
	}
	if cache.Len() != 0 {
		t.Fatalf("expected empty extraction not to be cached")
	}
	assertDirEmpty(t, dir)
}

func TestSummaryPipeline_ExtractorFailureRemovesTempFile(t *testing.T) {
	extractor := &MockExtractor{err: errors.New("not a pdf")}
	p, _, dir := newTestPipeline(t, extractor, StaticCompleter(sampleResponse))

	_, err := p.Run(context.Background(), upload("garbage"))
	if !apperrors.IsType(err, apperrors.ErrorTypeProcessing) {
		t.Fatalf("expected processing error, got %v", err)
	}
	assertDirEmpty(t, dir)
}

func TestSummaryPipeline_ParseIncomplete(t *testing.T) {
	extractor := &MockExtractor{text: "text"}
	p, _, _ := newTestPipeline(t, extractor, StaticCompleter("I am unable to summarize this."))

	_, err := p.Run(context.Background(), upload("%PDF x"))
	if !apperrors.IsType(err, apperrors.ErrorTypeParseIncomplete) {
		t.Fatalf("expected parse_incomplete, got %v", err)
	}
	if !errors.Is(err, domain.ErrIncompleteSummary) {
		t.Fatalf("expected ErrIncompleteSummary cause, got %v", err)
	}
}

func TestSummaryPipeline_BackendErrorThenRetry(t *testing.T) {
	extractor := &MockExtractor{text: "paper text"}
	completer := NewMockCompleter(func(call int, prompt string) (string, error) {
		if call == 1 {
			return "", errors.New("gateway timeout")
		}
		return sampleResponse, nil
	})
	p, _, _ := newTestPipeline(t, extractor, completer)

	_, err := p.Run(context.Background(), upload("%PDF retry me"))
	if !apperrors.IsType(err, apperrors.ErrorTypeBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if completer.Calls() != 1 {
		t.Fatalf("expected no automatic retry, got %d calls", completer.Calls())
	}

	var runErr *domain.RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("expected error to carry the file hash, got %v", err)
	}
	want, _ := HashContent([]byte("%PDF retry me"))
	if runErr.FileHash != want {
		t.Fatalf("expected file hash %s, got %s", want, runErr.FileHash)
	}

	run, err := p.Retry(context.Background(), runErr.FileHash)
	if err != nil {
		t.Fatalf("unexpected retry error: %v", err)
	}
	if !run.CacheHit || run.Summary.Difficulty != "7" {
		t.Fatalf("unexpected retry result: %+v", run)
	}
	if extractor.Calls() != 1 {
		t.Fatalf("retry should reuse extracted text, got %d extractions", extractor.Calls())
	}
}

func TestSummaryPipeline_RetryUnknownAndForget(t *testing.T) {
	extractor := &MockExtractor{text: "paper text"}
	p, _, _ := newTestPipeline(t, extractor, StaticCompleter(sampleResponse))

	_, err := p.Retry(context.Background(), "deadbeef")
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if !errors.Is(err, domain.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}

	run, err := p.Run(context.Background(), upload("%PDF forget me"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Forget(run.FileHash) {
		t.Fatalf("expected cached entry to be forgotten")
	}
	if _, err := p.Retry(context.Background(), run.FileHash); !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		t.Fatalf("expected not_found after forget, got %v", err)
	}
}

func TestSummaryPipeline_EmptyUpload(t *testing.T) {
	p, _, _ := newTestPipeline(t, &MockExtractor{}, StaticCompleter(sampleResponse))

	_, err := p.Run(context.Background(), upload(""))
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Fatalf("unexpected message: %v", err)
	}
}
