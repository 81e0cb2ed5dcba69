package service

import (
	"strings"
	"time"

	"paper-summarizer/internal/domain"
	apperrors "paper-summarizer/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor pulls plain text out of PDFs with MuPDF.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		logger: logger,
	}
}

// ExtractFile extracts the text of the PDF at path.
func (p *PDFExtractor) ExtractFile(path string) (*domain.ExtractedText, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, apperrors.NewProcessingError("failed to open PDF", err)
	}
	defer doc.Close()

	return p.extract(doc)
}

// extract walks every page in order. Each page with text contributes its
// text followed by a newline; pages that fail or yield nothing are skipped.
func (p *PDFExtractor) extract(doc *fitz.Document) (*domain.ExtractedText, error) {
	numPages := doc.NumPage()
	out := &domain.ExtractedText{
		Metadata: domain.DocumentMetadata{
			PageCount: numPages,
		},
	}

	meta := doc.Metadata()
	if title, ok := meta["title"]; ok && title != "" {
		out.Metadata.Title = title
	}
	if author, ok := meta["author"]; ok && author != "" {
		out.Metadata.Author = author
	}

	var text strings.Builder
	for pageNum := 0; pageNum < numPages; pageNum++ {
		pageText, err := doc.Text(pageNum)
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
		out.PagesWithText++
	}

	out.Content = text.String()
	out.ExtractedAt = time.Now()

	p.logger.Debug("PDF text extracted",
		"pages", numPages,
		"pages_with_text", out.PagesWithText,
		"chars", len(out.Content),
	)

	return out, nil
}
