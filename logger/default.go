package logger

import (
	"sync"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/formatter"
	"github.com/philipp01105/nlog-syslog/handler/sysloghandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The default logger writes to the local syslog daemon. The socket
	// is opened on first use so importing the package has no side effects.
	defaultLogger = NewBuilder().
		WithHandler(&localSyslog{}).
		WithLevel(core.InfoLevel).
		Build()
}

// dialLocalSyslog opens the connection used by the default logger.
var dialLocalSyslog = func() (sysloghandler.Transport, error) {
	return sysloghandler.Dial("", "")
}

// localSyslog connects to the local daemon on the first entry. Without a
// reachable daemon entries are dropped.
type localSyslog struct {
	mu     sync.Mutex
	dialed bool
	h      *sysloghandler.Handler
}

func (l *localSyslog) handler() *sysloghandler.Handler {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.dialed {
		l.dialed = true
		t, err := dialLocalSyslog()
		if err != nil {
			return nil
		}
		cfg := sysloghandler.DefaultConfig()
		cfg.Transport = t
		cfg.Layout = formatter.NewTextFormatter(formatter.Config{})
		l.h = sysloghandler.New(cfg)
	}
	return l.h
}

func (l *localSyslog) Handle(entry *core.Entry) error {
	if h := l.handler(); h != nil {
		return h.Handle(entry)
	}
	return sysloghandler.ErrNoTransport
}

// Close closes the connection if one was opened. A logger that never
// logged does not dial.
func (l *localSyslog) Close() error {
	l.mu.Lock()
	l.dialed = true
	h := l.h
	l.mu.Unlock()
	if h != nil {
		return h.Close()
	}
	return nil
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	Default().Debug(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	Default().Info(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	Default().Warn(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	Default().Error(msg, fields...)
}

// ErrorTrace logs an error and its stack using the default logger
func ErrorTrace(msg string, err error, fields ...core.Field) {
	Default().ErrorTrace(msg, err, fields...)
}

// Fatal logs a fatal message using the default logger and exits the program
func Fatal(msg string, fields ...core.Field) {
	Default().Fatal(msg, fields...)
}

// Panic logs a panic message using the default logger and panics
func Panic(msg string, fields ...core.Field) {
	Default().Panic(msg, fields...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Fatalf logs a formatted fatal message using the default logger and exits the program
func Fatalf(format string, args ...interface{}) {
	Default().Fatalf(format, args...)
}

// Panicf logs a formatted panic message using the default logger and panics
func Panicf(format string, args ...interface{}) {
	Default().Panicf(format, args...)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
