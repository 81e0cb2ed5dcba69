package domain

import (
	"io"
	"time"
)

// DocumentMetadata contains information about the PDF document
type DocumentMetadata struct {
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	PageCount int    `json:"page_count"`
	FileSize  int64  `json:"file_size"`
}

// ExtractedText is the concatenated page text of one PDF plus its metadata.
// Pages that yielded no text are not represented in Content.
type ExtractedText struct {
	Content       string           `json:"-"`
	Metadata      DocumentMetadata `json:"metadata"`
	PagesWithText int              `json:"pages_with_text"`
	ExtractedAt   time.Time        `json:"extracted_at"`
}

// IsEmpty reports whether no text could be recovered from the document.
func (t *ExtractedText) IsEmpty() bool {
	return t == nil || isBlank(t.Content)
}

// Upload represents an uploaded PDF waiting to be processed
type Upload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}
