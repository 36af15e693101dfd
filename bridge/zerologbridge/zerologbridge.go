// Package zerologbridge lets a zerolog.Logger write to a handler:
//
//	log := zerolog.New(zerologbridge.New(h)).With().Timestamp().Logger()
//
// zerolog renders each event as a JSON object; the writer decodes it back
// into an entry. The message, level, time, caller and stack keys are
// taken from zerolog's package settings, every other key becomes a field.
package zerologbridge

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/valyala/fastjson"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/handler"
)

var parserPool fastjson.ParserPool

// Writer is a zerolog.LevelWriter feeding a handler.Handler.
type Writer struct {
	handler handler.Handler
}

var _ zerolog.LevelWriter = (*Writer)(nil)

// New creates a writer for h.
func New(h handler.Handler) *Writer {
	return &Writer{handler: h}
}

// Write handles an event whose level is only known from its JSON body.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel decodes one zerolog event and passes it to the handler.
func (w *Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	parser := parserPool.Get()
	defer parserPool.Put(parser)

	v, err := parser.ParseBytes(p)
	if err != nil {
		return 0, errors.Wrap(err, "cannot parse zerolog event")
	}
	o, err := v.Object()
	if err != nil {
		return 0, errors.Wrap(err, "cannot parse zerolog event")
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = levelFromZerolog(level)
	var errMsg string
	var stack []string

	o.Visit(func(k []byte, v *fastjson.Value) {
		key := string(k)
		switch key {
		case zerolog.MessageFieldName:
			entry.Message = string(v.GetStringBytes())
		case zerolog.LevelFieldName:
			if level == zerolog.NoLevel {
				if l, err := zerolog.ParseLevel(string(v.GetStringBytes())); err == nil {
					entry.Level = levelFromZerolog(l)
				}
			}
		case zerolog.TimestampFieldName:
			if t, err := time.Parse(zerolog.TimeFieldFormat, string(v.GetStringBytes())); err == nil {
				entry.Time = t
			}
		case zerolog.CallerFieldName:
			entry.Caller = parseCaller(string(v.GetStringBytes()))
		case zerolog.ErrorStackFieldName:
			stack = stackLines(v)
		case zerolog.ErrorFieldName:
			errMsg = string(v.GetStringBytes())
			entry.Fields = append(entry.Fields, core.Field{Key: key, Type: core.ErrorType, Str: errMsg})
		default:
			entry.Fields = append(entry.Fields, fieldFromJSON(key, v))
		}
	})

	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}
	if errMsg != "" {
		entry.Trace = append([]string{errMsg}, stack...)
	}

	if err := w.handler.Handle(entry); err != nil {
		return 0, err
	}
	return len(p), nil
}

// fieldFromJSON converts a JSON value into the closest field type.
// Objects and arrays are kept as their JSON text.
func fieldFromJSON(key string, v *fastjson.Value) core.Field {
	switch v.Type() {
	case fastjson.TypeString:
		return core.Field{Key: key, Type: core.StringType, Str: string(v.GetStringBytes())}
	case fastjson.TypeNumber:
		if n, err := v.Int64(); err == nil {
			return core.Field{Key: key, Type: core.Int64Type, Int64: n}
		}
		return core.Field{Key: key, Type: core.Float64Type, Float64: v.GetFloat64()}
	case fastjson.TypeTrue:
		return core.Field{Key: key, Type: core.BoolType, Int64: 1}
	case fastjson.TypeFalse:
		return core.Field{Key: key, Type: core.BoolType}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: v.String()}
	}
}

// stackLines renders the array written by an ErrorStackMarshaler such as
// zerolog/pkgerrors: one function line and one indented source line per
// frame.
func stackLines(v *fastjson.Value) []string {
	frames := v.GetArray()
	lines := make([]string, 0, 2*len(frames))
	for _, f := range frames {
		fn := string(f.GetStringBytes("func"))
		src := string(f.GetStringBytes("source"))
		line := string(f.GetStringBytes("line"))
		if fn != "" {
			lines = append(lines, fn)
		}
		if src != "" {
			lines = append(lines, "\t"+src+":"+line)
		}
	}
	return lines
}

// parseCaller splits zerolog's "file:line" caller value.
func parseCaller(s string) core.CallerInfo {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return core.CallerInfo{}
	}
	line, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return core.CallerInfo{}
	}
	return core.CallerInfo{File: s[:i], ShortFile: filepath.Base(s[:i]), Line: line, Defined: true}
}

func levelFromZerolog(l zerolog.Level) core.Level {
	switch l {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.FatalLevel:
		return core.FatalLevel
	case zerolog.PanicLevel:
		return core.PanicLevel
	default:
		return core.InfoLevel
	}
}
