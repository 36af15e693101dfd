package logrushook

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

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

func newLogger(h *recordingHandler, levels ...logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.TraceLevel)
	l.AddHook(New(h, levels...))
	return l
}

func TestHook_Fields(t *testing.T) {
	h := &recordingHandler{}
	l := newLogger(h)

	l.WithFields(logrus.Fields{"user": "alice", "attempt": 3}).Warn("login failed")

	want := []string{"[WARN] login failed attempt=3 user=alice"}
	if diff := cmp.Diff(want, h.lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestHook_Levels(t *testing.T) {
	h := &recordingHandler{}
	l := newLogger(h)

	l.Trace("t")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	want := []core.Level{core.DebugLevel, core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel}
	if diff := cmp.Diff(want, h.levels); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
}

func TestHook_RestrictedLevels(t *testing.T) {
	h := &recordingHandler{}
	l := newLogger(h, logrus.ErrorLevel, logrus.WarnLevel)

	l.Info("skipped")
	l.Error("kept")

	if len(h.lines) != 1 || !strings.Contains(h.lines[0], "kept") {
		t.Errorf("lines = %q", h.lines)
	}
}

func TestHook_ErrorTrace(t *testing.T) {
	h := &recordingHandler{}
	l := newLogger(h)

	l.WithError(errors.New("connection reset")).Error("query failed")

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

func TestHook_Caller(t *testing.T) {
	h := &recordingHandler{}
	l := newLogger(h)
	l.SetReportCaller(true)

	l.Info("with caller")

	if len(h.lines) != 1 || !strings.Contains(h.lines[0], "[logrushook_test.go:") {
		t.Errorf("lines = %q", h.lines)
	}
}
