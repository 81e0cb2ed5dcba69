package handler

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"paper-summarizer/internal/domain"
	apperrors "paper-summarizer/pkg/errors"

	"github.com/google/uuid"
)

// AuthMiddleware guards the API with a shared bearer token. With an empty
// token every request is let through.
type AuthMiddleware struct {
	accessToken string
	logger      domain.Logger
}

// NewAuthMiddleware creates a new token middleware
func NewAuthMiddleware(accessToken string, logger domain.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		accessToken: accessToken,
		logger:      logger,
	}
}

// Middleware validates the Authorization header
func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.accessToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAppError(w, apperrors.NewUnauthorizedError("Authorization header required"))
			return
		}

		// Extract token from "Bearer <token>" format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeAppError(w, apperrors.NewUnauthorizedError("Invalid authorization header format"))
			return
		}

		token := strings.TrimSpace(parts[1])
		if token == "" {
			writeAppError(w, apperrors.NewUnauthorizedError("Token required"))
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(m.accessToken)) != 1 {
			m.logger.Warn("Rejected request with invalid token", "path", r.URL.Path, "remote", r.RemoteAddr)
			writeAppError(w, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger assigns a request id and logs every request on completion
func RequestLogger(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
			next.ServeHTTP(rec, r.WithContext(ctx))

			logger.Info("HTTP request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
