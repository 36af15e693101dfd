package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/nlog-syslog/core"
)

// Layout renders the body of a log entry. Line-oriented outputs such as
// syslog frame the body themselves, so a Layout never appends a
// trailing newline.
type Layout interface {
	// Format renders the entry's body
	Format(entry *core.Entry) string

	// Header returns the banner sent once before the first entry of a
	// session, or "" for none.
	Header() string

	// Footer returns the trailer sent once when the session ends, or ""
	// for none. It is only sent when the header path ran.
	Footer() string

	// IgnoresTrace reports whether the layout leaves entry.Trace to the
	// output. Layouts that render traces themselves return false.
	IgnoresTrace() bool
}

// BufferLayout is an optional interface that layouts can implement
// to format directly into a caller-provided buffer, avoiding the
// intermediate string.
type BufferLayout interface {
	// FormatEntry appends the entry's body to buf.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat adds a timestamp in this format to the body.
	// Syslog packets already carry one, so text output leaves it out
	// when empty.
	TimestampFormat string
	// HeaderText is the session banner returned by Header().
	HeaderText string
	// FooterText is the session trailer returned by Footer().
	FooterText string
}

// Header returns the configured session banner.
func (c Config) Header() string { return c.HeaderText }

// Footer returns the configured session trailer.
func (c Config) Footer() string { return c.FooterText }

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// render runs fn against a pooled buffer and returns its contents.
func render(entry *core.Entry, fn func(*core.Entry, *bytes.Buffer)) string {
	buf := getBuffer()
	fn(entry, buf)
	s := buf.String()
	putBuffer(buf)
	return s
}
