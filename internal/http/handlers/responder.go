package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sleeper-bridge/internal/http/requestutil"
	"github.com/preston-bernstein/sleeper-bridge/internal/logging"
)

// ErrorResponse is the body returned for failed upstream calls.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

// writeUpstreamError reports an upstream failure as 502 with a fixed message and the raw error text.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, message string, err error, fallback *slog.Logger) {
	logger := loggerFromContext(r, fallback)
	logging.Warn(logger, "upstream request failed", err, slog.String("message", message))
	writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: message, Details: err.Error()}, logger)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := requestutil.RequestIDFromContext(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
