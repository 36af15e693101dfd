package sysloghandler

import (
	"go.uber.org/zap"
)

// ErrorSink receives diagnostics about the handler itself: unknown
// facilities, missing transports, failed writes. Report must not panic
// and must not log back into the handler that reports.
type ErrorSink interface {
	Report(msg string)
}

// ErrorSinkFunc adapts a function to ErrorSink.
type ErrorSinkFunc func(msg string)

// Report calls f(msg).
func (f ErrorSinkFunc) Report(msg string) { f(msg) }

// ZapErrorSink writes diagnostics as zap warnings.
type ZapErrorSink struct {
	logger *zap.Logger
}

// NewZapErrorSink creates an ErrorSink backed by logger. A nil logger
// discards all reports.
func NewZapErrorSink(logger *zap.Logger) *ZapErrorSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapErrorSink{logger: logger}
}

// Report logs msg at warn level.
func (s *ZapErrorSink) Report(msg string) {
	s.logger.Warn(msg)
}

// defaultErrorSink logs to stderr through a production zap logger.
func defaultErrorSink(name string) ErrorSink {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return NewZapErrorSink(logger.Named("syslog").With(zap.String("handler", name)))
}
