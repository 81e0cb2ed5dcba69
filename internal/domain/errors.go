package domain

import "errors"

// Domain errors
var (
	ErrNoExtractableText = errors.New("no extractable text found in the PDF")
	ErrIncompleteSummary = errors.New("the summary output was incomplete")
	ErrRunNotFound       = errors.New("no cached document for this hash")
	ErrMissingAPIKey     = errors.New("model API key missing")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// RunError ties a failure to the upload it happened on, so a caller can
// retry the cached extraction by hash.
type RunError struct {
	FileHash string
	Err      error
}

func (e *RunError) Error() string {
	return e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}
