package handler

import (
		"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/philipp01105/nlog-syslog/core"
)

func TestSlogHandler_Enabled(t *testing.T) {
	h := &recordingHandler{}

	sh := NewSlogHandler(h, core.InfoLevel)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	h := &recordingHandler{}

	sh := NewSlogHandler(h, core.DebugLevel)
	logger := slog.New(sh)

	logger.Info("test message", "key", "value", "count", 42)

	output := h.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Expected 'key=value' in output, got: %s", output)
	}
	if !strings.Contains(output, "count=42") {
		t.Errorf("Expected 'count=42' in output, got: %s", output)
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	h := &recordingHandler{}

	sh := NewSlogHandler(h, core.DebugLevel)
	logger := slog.New(sh).With("request_id", "req-123")

	logger.Info("test message")

	output := h.String()
	if !strings.Contains(output, "request_id=req-123") {
		t.Errorf("Expected 'request_id=req-123' in output, got: %s", output)
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	h := &recordingHandler{}

	sh := NewSlogHandler(h, core.DebugLevel)
	logger := slog.New(sh).WithGroup("auth")

	logger.Info("test message", "user_id", 123)

	output := h.String()
	if !strings.Contains(output, "auth.user_id=123") {
		t.Errorf("Expected 'auth.user_id=123' in output, got: %s", output)
	}
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	h := &recordingHandler{}

	sh := NewSlogHandler(h, core.InfoLevel)
	logger := slog.New(sh)

	logger.Debug("should not appear")
	if h.String() != "" {
		t.Error("Debug message should not have been logged")
	}

	logger.Info("should appear")
	if !strings.Contains(h.String(), "should appear") {
		t.Errorf("Expected 'should appear' in output, got: %s", h.String())
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.FatalLevel},
	}

	for _, tt := range tests {
		got := slogLevelToCore(tt.slogLevel)
		if got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}

func TestSlogHandler_ErrorBecomesTrace(t *testing.T) {
	h := &recordingHandler{}
	logger := slog.New(NewSlogHandler(h, core.DebugLevel))

	logger.Error("query failed", "err", errors.New("connection reset"))

	if len(h.traces) != 1 {
		t.Fatalf("got %d entries, want 1", len(h.traces))
	}
	trace := h.traces[0]
	if len(trace) < 2 || trace[0] != "connection reset" {
		t.Fatalf("trace = %q", trace)
	}
	if !strings.Contains(trace[1], "TestSlogHandler_ErrorBecomesTrace") {
		t.Errorf("trace should carry the stack, got %q", trace)
	}
	if !strings.Contains(h.String(), "err=connection reset") {
		t.Errorf("error field missing from output: %s", h.String())
	}
}

func TestSlogHandler_WithAttrsError(t *testing.T) {
	h := &recordingHandler{}
	logger := slog.New(NewSlogHandler(h, core.DebugLevel)).With("cause", errors.New("timeout"))

	logger.Warn("retrying")

	if len(h.traces) != 1 || len(h.traces[0]) == 0 || h.traces[0][0] != "timeout" {
		t.Errorf("traces = %q", h.traces)
	}
}
