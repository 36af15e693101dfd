package logger

import (
	"strings"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/handler/sysloghandler"
)

// Level is core.Level, re-exported so callers need only this package.
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
)

// ParseLevel reads a level name the way the syslog file config does.
// Empty or unknown names give InfoLevel.
func ParseLevel(s string) Level {
	if strings.TrimSpace(s) == "" {
		return InfoLevel
	}
	l, err := sysloghandler.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return l
}

// Severity returns the syslog severity entries at l are sent with.
func Severity(l Level) int {
	return l.Severity()
}
