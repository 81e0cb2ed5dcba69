package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"paper-summarizer/internal/domain"
	"paper-summarizer/internal/service"

	"github.com/gorilla/mux"
)

const downloadFilename = "research_paper_summary.txt"

// SummaryHandler exposes the summarization pipeline over HTTP
type SummaryHandler struct {
	pipeline    domain.Pipeline
	maxFileSize int64
	logger      domain.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(pipeline domain.Pipeline, maxFileSize int64, logger domain.Logger) *SummaryHandler {
	return &SummaryHandler{
		pipeline:    pipeline,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Summarize handles a PDF upload and returns the parsed summary.
// ?format=text returns the plain-text export as an attachment instead, and
// ?format=response the sections re-rendered as hyphen-bulleted text.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	// multipart overhead on top of the file itself
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if strings.ToLower(filepath.Ext(originalName)) != ".pdf" {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Only PDF (.pdf) files are accepted.")
		return
	}
	if header.Size > h.maxFileSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	run, err := h.pipeline.Run(r.Context(), &domain.Upload{
		Filename: originalName,
		Size:     header.Size,
		Reader:   file,
	})
	if err != nil {
		requestID, _ := GetRequestIDFromContext(r)
		h.logger.Error("Summary run failed", err, "filename", originalName, "request_id", requestID)
		writeAppError(w, err)
		return
	}

	h.writeRun(w, r, run)
}

// Retry re-summarizes a previously extracted upload. This is the manual
// retry offered after a backend failure.
func (h *SummaryHandler) Retry(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]
	if hash == "" {
		writeError(w, http.StatusBadRequest, "File hash is required")
		return
	}

	run, err := h.pipeline.Retry(r.Context(), hash)
	if err != nil {
		requestID, _ := GetRequestIDFromContext(r)
		h.logger.Error("Summary retry failed", err, "file_hash", hash, "request_id", requestID)
		writeAppError(w, err)
		return
	}

	h.writeRun(w, r, run)
}

// Forget drops the cached extraction of an upload
func (h *SummaryHandler) Forget(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]
	if !h.pipeline.Forget(hash) {
		writeError(w, http.StatusNotFound, "No cached document for this hash")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export renders a posted summary as the downloadable text file
func (h *SummaryHandler) Export(w http.ResponseWriter, r *http.Request) {
	var summary domain.Summary
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&summary); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeDownload(w, service.BuildDownloadText(summary))
}

func (h *SummaryHandler) writeRun(w http.ResponseWriter, r *http.Request, run *domain.SummaryRun) {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "text":
		writeDownload(w, service.BuildDownloadText(run.Summary))
		return
	case "response":
		// parsed sections in the layout the model was asked for
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(service.FormatSummary(run.Summary)))
		return
	}
	if r.URL.Query().Get("raw") != "true" {
		run.RawResponse = ""
	}
	writeJSON(w, http.StatusOK, run)
}

func writeDownload(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+downloadFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
