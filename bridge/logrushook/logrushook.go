// Package logrushook sends logrus entries to a handler, so programs that
// already log through logrus can write to syslog.
//
//	h := sysloghandler.New(cfg)
//	logrus.AddHook(logrushook.New(h))
package logrushook

import (
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/handler"
)

// Hook is a logrus.Hook feeding a handler.Handler. The logrus.ErrorKey
// field, or any other field holding an error, becomes the entry's trace.
type Hook struct {
	handler handler.Handler
	levels  []logrus.Level
}

// New creates a hook for the given levels (default: all levels).
func New(h handler.Handler, levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{handler: h, levels: levels}
}

// Levels implements logrus.Hook.
func (k *Hook) Levels() []logrus.Level {
	return k.levels
}

// Fire implements logrus.Hook.
func (k *Hook) Fire(e *logrus.Entry) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = e.Time
	entry.Level = levelFromLogrus(e.Level)
	entry.Message = e.Message

	keys := make([]string, 0, len(e.Data))
	for key := range e.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f := core.FieldOf(key, e.Data[key])
		if err := f.Err(); err != nil && (entry.Trace == nil || key == logrus.ErrorKey) {
			entry.Trace = core.TraceLines(err)
		}
		entry.Fields = append(entry.Fields, f)
	}

	if e.HasCaller() {
		entry.Caller = core.CallerInfo{
			File:      e.Caller.File,
			ShortFile: filepath.Base(e.Caller.File),
			Line:      e.Caller.Line,
			Function:  e.Caller.Function,
			Defined:   true,
		}
	}

	return k.handler.Handle(entry)
}

func levelFromLogrus(l logrus.Level) core.Level {
	switch l {
	case logrus.PanicLevel:
		return core.PanicLevel
	case logrus.FatalLevel:
		return core.FatalLevel
	case logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
