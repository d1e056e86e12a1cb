package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/sleeper-bridge/internal/http/requestutil"
	"github.com/preston-bernstein/sleeper-bridge/internal/logging"
	"github.com/preston-bernstein/sleeper-bridge/internal/metrics"
)

// LoggingMiddleware wraps the handler with request logging, request ID support, and metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
		w.Header().Set(requestutil.HeaderRequestID, reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = requestutil.WithRequestID(ctx, reqID)
		r = r.WithContext(ctx)

		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, NormalizePath(r.URL.Path), ww.status, duration)

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// routeTemplates maps the first path segment to its route template and expected segment count.
var routeTemplates = map[string]struct {
	template string
	segments int
}{
	"league":             {"/league/:leagueId", 2},
	"roster":             {"/roster/:leagueId", 2},
	"matchups":           {"/matchups/:leagueId/:week", 3},
	"league_users":       {"/league_users/:leagueId", 2},
	"user":               {"/user/:username", 2},
	"simplified_rosters": {"/simplified_rosters/:leagueId", 2},
}

// NormalizePath collapses identifiers out of a request path so metrics stay low-cardinality.
func NormalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	switch path {
	case "", "/":
		return "/"
	case "/health", "/player_names":
		return path
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if route, ok := routeTemplates[parts[0]]; ok && len(parts) == route.segments {
		return route.template
	}
	return "unmatched"
}
