package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/nlog-syslog/core"
)

// TextFormatter formats log entries as human-readable text:
//
//	[LEVEL] [file.go:12] message key=value
//
// It leaves traces to the output, which sends one line per packet.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) string {
	return render(entry, f.FormatEntry)
}

// IgnoresTrace returns true: trace lines are not part of the text body.
func (f *TextFormatter) IgnoresTrace() bool {
	return true
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: "[DEBUG] ",
	core.InfoLevel:  "[INFO] ",
	core.WarnLevel:  "[WARN] ",
	core.ErrorLevel: "[ERROR] ",
	core.FatalLevel: "[FATAL] ",
	core.PanicLevel: "[PANIC] ",
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if f.TimestampFormat != "" {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if int(entry.Level) >= 0 && int(entry.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
}
