package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"paper-summarizer/internal/domain"
	apperrors "paper-summarizer/pkg/errors"
)

type contextKey string

const (
	requestIDContextKey contextKey = "request_id"
)

const fileHashHeader = "X-File-Hash"

// GetRequestIDFromContext returns the id assigned by the request logger
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeAppError maps an error to its status code. AppErrors expose their
// type and details; anything else is reported as an internal error. A
// failure tied to an upload also carries its file hash for the retry route.
func writeAppError(w http.ResponseWriter, err error) {
	var fileHash string
	var runErr *domain.RunError
	if errors.As(err, &runErr) && runErr.FileHash != "" {
		fileHash = runErr.FileHash
		w.Header().Set(fileHashHeader, fileHash)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		body := map[string]string{"error": "Internal server error"}
		if fileHash != "" {
			body["file_hash"] = fileHash
		}
		writeJSON(w, http.StatusInternalServerError, body)
		return
	}

	body := map[string]string{
		"error": appErr.Message,
		"type":  string(appErr.Type),
	}
	if appErr.Details != "" {
		body["details"] = appErr.Details
	}
	if fileHash != "" {
		body["file_hash"] = fileHash
	}
	writeJSON(w, appErr.StatusCode, body)
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
