package formatter

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasttemplate"

	"github.com/philipp01105/nlog-syslog/core"
)

// Pattern tags understood by PatternFormatter.
const (
	TagTime     = "time"
	TagLevel    = "level"
	TagMessage  = "message"
	TagFields   = "fields"
	TagCaller   = "caller"
	TagFunction = "function"
	TagTrace    = "trace"
)

// DefaultPattern mirrors the TextFormatter output.
const DefaultPattern = "[{level}] {message}{fields}"

// PatternFormatter renders entries through a user supplied template such
// as "{level} {caller} - {message}{fields}". Unknown tags render empty.
// When the pattern contains {trace} the trace is rendered inline, joined
// by " | ", and the output no longer sends it line by line.
type PatternFormatter struct {
	Config
	tmpl        *fasttemplate.Template
	renderTrace bool
}

// NewPatternFormatter parses pattern and creates a formatter for it.
// An empty pattern uses DefaultPattern.
func NewPatternFormatter(pattern string, cfg Config) (*PatternFormatter, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	tmpl, err := fasttemplate.NewTemplate(pattern, "{", "}")
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	return &PatternFormatter{
		Config:      cfg,
		tmpl:        tmpl,
		renderTrace: strings.Contains(pattern, "{"+TagTrace+"}"),
	}, nil
}

// Format formats an entry according to the pattern
func (f *PatternFormatter) Format(entry *core.Entry) string {
	return render(entry, f.FormatEntry)
}

// IgnoresTrace reports whether the pattern lacks a {trace} tag.
func (f *PatternFormatter) IgnoresTrace() bool {
	return !f.renderTrace
}

// FormatEntry writes the formatted entry into the given buffer
func (f *PatternFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	// Writes into a bytes.Buffer cannot fail.
	_, _ = f.tmpl.ExecuteFunc(buf, func(w io.Writer, tag string) (int, error) {
		b := w.(*bytes.Buffer)
		start := b.Len()
		switch tag {
		case TagTime:
			b.Write(entry.Time.AppendFormat(b.AvailableBuffer(), f.TimestampFormat))
		case TagLevel:
			b.WriteString(entry.Level.String())
		case TagMessage:
			b.WriteString(entry.Message)
		case TagFields:
			for _, field := range entry.Fields {
				b.WriteByte(' ')
				b.WriteString(field.Key)
				b.WriteByte('=')
				b.WriteString(field.StringValue())
			}
		case TagCaller:
			if entry.Caller.Defined {
				b.WriteString(entry.Caller.ShortFile)
				b.WriteByte(':')
				b.WriteString(strconv.Itoa(entry.Caller.Line))
			}
		case TagFunction:
			b.WriteString(entry.Caller.Function)
		case TagTrace:
			for i, line := range entry.Trace {
				if i > 0 {
					b.WriteString(" | ")
				}
				b.WriteString(strings.TrimSpace(line))
			}
		}
		return b.Len() - start, nil
	})
}
