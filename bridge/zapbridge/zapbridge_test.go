package zapbridge

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/formatter"
)

type recordingHandler struct {
	mu     sync.Mutex
	lines  []string
	levels []core.Level
	traces [][]string
}

var layout = formatter.NewTextFormatter(formatter.Config{IncludeCaller: true})

func (h *recordingHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = append(h.lines, layout.Format(entry))
	h.levels = append(h.levels, entry.Level)
	h.traces = append(h.traces, append([]string(nil), entry.Trace...))
	return nil
}

func (h *recordingHandler) Close() error { return nil }

func TestCore_Fields(t *testing.T) {
	h := &recordingHandler{}
	log := zap.New(New(h, zapcore.DebugLevel)).With(zap.String("service", "api"))

	log.Warn("login failed", zap.String("user", "alice"), zap.Int("attempt", 3), zap.Bool("locked", true))

	want := []string{"[WARN] login failed service=api user=alice attempt=3 locked=true"}
	if diff := cmp.Diff(want, h.lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestCore_Levels(t *testing.T) {
	h := &recordingHandler{}
	log := zap.New(New(h, zapcore.InfoLevel))

	log.Debug("filtered")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	want := []core.Level{core.InfoLevel, core.WarnLevel, core.ErrorLevel}
	if diff := cmp.Diff(want, h.levels); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
}

func TestCore_ErrorTrace(t *testing.T) {
	h := &recordingHandler{}
	log := zap.New(New(h, zapcore.DebugLevel))

	log.Error("query failed", zap.Error(errors.New("connection reset")))

	if len(h.traces) != 1 {
		t.Fatalf("got %d entries", len(h.traces))
	}
	trace := h.traces[0]
	if len(trace) < 3 || trace[0] != "connection reset" || !strings.HasPrefix(trace[2], "\t") {
		t.Errorf("trace = %q", trace)
	}
	if !strings.Contains(h.lines[0], "error=connection reset") {
		t.Errorf("line = %q", h.lines[0])
	}
}

func TestCore_Stacktrace(t *testing.T) {
	h := &recordingHandler{}
	log := zap.New(New(h, zapcore.DebugLevel), zap.AddStacktrace(zapcore.ErrorLevel))

	log.Error("no error value")

	trace := h.traces[0]
	if len(trace) < 2 || !strings.Contains(trace[0], "TestCore_Stacktrace") || !strings.HasPrefix(trace[1], "\t") {
		t.Errorf("trace = %q", trace)
	}
}

func TestCore_CallerAndName(t *testing.T) {
	h := &recordingHandler{}
	log := zap.New(New(h, zapcore.DebugLevel), zap.AddCaller()).Named("db")

	log.Info("connected")

	if len(h.lines) != 1 || !strings.Contains(h.lines[0], "zapbridge_test.go:") || !strings.Contains(h.lines[0], "logger=db") {
		t.Errorf("lines = %q", h.lines)
	}
}

func TestCore_WithIsolated(t *testing.T) {
	h := &recordingHandler{}
	parent := zap.New(New(h, zapcore.DebugLevel))
	_ = parent.With(zap.String("child", "x"))

	parent.Info("parent")
	if strings.Contains(h.lines[0], "child") {
		t.Errorf("parent picked up child fields: %q", h.lines[0])
	}
}
