package domain

import (
	"context"
	"time"
)

// Completer sends a prompt to a hosted chat model and returns its text answer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextExtractor defines the interface for pulling plain text out of a PDF
type TextExtractor interface {
	ExtractFile(path string) (*ExtractedText, error)
}

// Summarizer turns extracted document text into a raw model response.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (*SummaryResult, error)
}

// ExtractionCache holds extracted text keyed by the hash of the uploaded bytes.
type ExtractionCache interface {
	Get(hash string) (*ExtractedText, bool)
	Put(hash string, text *ExtractedText)
	Forget(hash string) bool
}

// Pipeline drives a complete upload -> summary run.
type Pipeline interface {
	Run(ctx context.Context, upload *Upload) (*SummaryRun, error)
	Retry(ctx context.Context, fileHash string) (*SummaryRun, error)
	Forget(fileHash string) bool
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAccessToken() string
	GetAllowedOrigins() []string

	GetLLMProvider() string
	GetLLMAPIKey() string
	GetLLMBaseURL() string
	GetLLMModel() string
	GetLLMTemperature() float64
	GetLLMMaxTokens() int
	GetLLMTimeout() time.Duration
	GetGCPProjectID() string
	GetGCPLocation() string

	GetSummaryMode() SummaryMode
	GetChunkWords() int
	GetChunkThreshold() int
	GetCacheTTL() time.Duration
	GetCacheSize() int

	Validate() error
}
