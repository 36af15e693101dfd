package sysloghandler

import (
	"io"
	"os"
	"sync"
)

// WriterTransport writes packets as lines to an io.Writer, for example
// to inspect the exact output without a syslog daemon.
type WriterTransport struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewWriterTransport creates a transport writing to w (default: os.Stdout).
func NewWriterTransport(w io.Writer) *WriterTransport {
	if w == nil {
		w = os.Stdout
	}
	return &WriterTransport{w: w}
}

// Write writes p followed by a newline in a single call.
func (t *WriterTransport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(append(t.buf[:0], p...), '\n')
	if _, err := t.w.Write(t.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close closes the writer if it is an io.Closer other than stdout or
// stderr.
func (t *WriterTransport) Close() error {
	if t.w == os.Stdout || t.w == os.Stderr {
		return nil
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
