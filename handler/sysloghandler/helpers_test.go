package sysloghandler

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/nlog-syslog/core"
)

// recordingTransport keeps every packet written to it.
type recordingTransport struct {
	mu       sync.Mutex
	packets  []string
	closed   int
	failAt   int // fail the n-th write (1-based); 0 never fails
	writes   int
	closeErr error
}

func (t *recordingTransport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writes++
	if t.failAt > 0 && t.writes >= t.failAt {
		return 0, errors.New("connection refused")
	}
	t.packets = append(t.packets, string(p))
	return len(p), nil
}

func (t *recordingTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed++
	return t.closeErr
}

func (t *recordingTransport) Packets() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.packets...)
}

// recordingSink keeps every report.
type recordingSink struct {
	mu      sync.Mutex
	reports []string
}

func (s *recordingSink) Report(msg string) {
	s.mu.Lock()
	s.reports = append(s.reports, msg)
	s.mu.Unlock()
}

func (s *recordingSink) Reports() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.reports...)
}

var testTime = time.Date(2026, time.October, 19, 9, 5, 7, 0, time.UTC)

const testHeader = "Oct 19 09:05:07 testhost "

// newTestHandler returns a handler on a recording transport with a fixed
// host name and clock.
func newTestHandler(cfg Config) (*Handler, *recordingTransport, *recordingSink) {
	tr := &recordingTransport{}
	sink := &recordingSink{}
	if cfg.Transport == nil {
		cfg.Transport = tr
	}
	if cfg.Hostname == "" {
		cfg.Hostname = "testhost"
	}
	cfg.ErrorSink = sink
	h := New(cfg)
	h.now = func() time.Time { return testTime }
	return h, tr, sink
}

func testEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{Time: testTime, Level: level, Message: msg}
}

// alphabet returns n characters cycling through a-z, so the order of a
// reassembled message is checkable.
func alphabet(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('a' + i%26))
	}
	return b.String()
}

// stripPRI removes the leading "<n>" part of a packet.
func stripPRI(packet string) string {
	if i := strings.IndexByte(packet, '>'); strings.HasPrefix(packet, "<") && i > 0 {
		return packet[i+1:]
	}
	return packet
}
