// Package zapbridge provides a zapcore.Core that writes to a handler, so
// a *zap.Logger can log to syslog:
//
//	log := zap.New(zapbridge.New(h, zapcore.InfoLevel), zap.AddCaller())
package zapbridge

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/handler"
)

// Core is a zapcore.Core feeding a handler.Handler. An error field, or
// else the entry's stacktrace, becomes the trace.
type Core struct {
	zapcore.LevelEnabler
	handler handler.Handler
	fields  []core.Field
	errs    []error
}

var _ zapcore.Core = (*Core)(nil)

// New creates a core that accepts the levels enabled by enab.
func New(h handler.Handler, enab zapcore.LevelEnabler) *Core {
	return &Core{LevelEnabler: enab, handler: h}
}

// With adds structured context to the core.
func (c *Core) With(fs []zapcore.Field) zapcore.Core {
	clone := &Core{
		LevelEnabler: c.LevelEnabler,
		handler:      c.handler,
		fields:       append([]core.Field(nil), c.fields...),
		errs:         append([]error(nil), c.errs...),
	}
	for _, f := range fs {
		clone.fields, clone.errs = appendField(clone.fields, clone.errs, f)
	}
	return clone
}

// Check adds the core to ce if the level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry and passes it to the handler.
func (c *Core) Write(ent zapcore.Entry, fs []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = levelFromZap(ent.Level)
	entry.Message = ent.Message

	if ent.LoggerName != "" {
		entry.Fields = append(entry.Fields, core.Field{Key: "logger", Type: core.StringType, Str: ent.LoggerName})
	}
	entry.Fields = append(entry.Fields, c.fields...)
	errs := c.errs
	for _, f := range fs {
		entry.Fields, errs = appendField(entry.Fields, errs, f)
	}

	if len(errs) > 0 {
		// The error closest to the call site wins.
		entry.Trace = core.TraceLines(errs[len(errs)-1])
	} else if ent.Stack != "" {
		entry.Trace = stackLines(ent.Stack)
	}

	if ent.Caller.Defined {
		entry.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: ent.Caller.TrimmedPath(),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}

	return c.handler.Handle(entry)
}

// Sync is a no-op: handlers write synchronously.
func (c *Core) Sync() error {
	return nil
}

// appendField converts one zap field. Errors are kept for the trace.
func appendField(fields []core.Field, errs []error, f zapcore.Field) ([]core.Field, []error) {
	if f.Type == zapcore.ErrorType {
		if err, ok := f.Interface.(error); ok && err != nil {
			return append(fields, core.FieldOf(f.Key, err)), append(errs, err)
		}
	}
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)
	if v, ok := enc.Fields[f.Key]; ok {
		return append(fields, core.FieldOf(f.Key, v)), errs
	}
	for k, v := range enc.Fields {
		fields = append(fields, core.FieldOf(k, v))
	}
	return fields, errs
}

func stackLines(stack string) []string {
	var lines []string
	for _, line := range strings.Split(stack, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func levelFromZap(l zapcore.Level) core.Level {
	switch l {
	case zapcore.DebugLevel:
		return core.DebugLevel
	case zapcore.InfoLevel:
		return core.InfoLevel
	case zapcore.WarnLevel:
		return core.WarnLevel
	case zapcore.ErrorLevel, zapcore.DPanicLevel:
		return core.ErrorLevel
	case zapcore.PanicLevel:
		return core.PanicLevel
	case zapcore.FatalLevel:
		return core.FatalLevel
	default:
		return core.DebugLevel
	}
}
