package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn", errors.New("boom"))
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "upstream failed", errors.New("boom"), slog.String(FieldUpstream, "players"))

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "upstream=players") {
		t.Fatalf("expected error and upstream fields, got %q", out)
	}
}

func TestWarnOmitsNilError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Warn(logger, "slow upstream", nil, slog.String(FieldUpstream, "players"))

	out := buf.String()
	if strings.Contains(out, FieldError+"=") {
		t.Fatalf("expected no error field for nil error, got %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "upstream=players") {
		t.Fatalf("expected warn line with upstream field, got %q", out)
	}
}
