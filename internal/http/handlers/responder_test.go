package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/sleeper-bridge/internal/logging"
	"github.com/preston-bernstein/sleeper-bridge/internal/testutil"
)

func TestWriteJSONSetsHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusAccepted, map[string]string{"ok": "yes"}, nil)

	testutil.AssertStatus(t, rr, http.StatusAccepted)
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %s", ct)
	}
}

func TestWriteJSONLogsEncodeFailure(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, make(chan int), logger)

	if !strings.Contains(buf.String(), "failed to encode response") {
		t.Fatalf("expected encode failure log, got %q", buf.String())
	}
}

func TestWriteUpstreamErrorLogsWithRequestLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/league/1", nil)
	req = req.WithContext(logging.WithLogger(req.Context(), logger.With("request_id", "abc")))
	rr := httptest.NewRecorder()

	writeUpstreamError(rr, req, "Sleeper API request failed", errors.New("boom"), nil)

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	out := buf.String()
	if !strings.Contains(out, "request_id=abc") || !strings.Contains(out, "error=boom") {
		t.Fatalf("expected request-scoped warn log, got %q", out)
	}
}

func TestLoggerFromContextNilRequest(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	if got := loggerFromContext(nil, logger); got != logger {
		t.Fatalf("expected fallback logger for nil request")
	}
}
