package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/nlog-syslog/core"
)

// MultiHandler sends log entries to multiple handlers, for example a
// remote syslog handler next to a local one.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle processes a log entry by sending it to all handlers. A failing
// handler does not stop the others; all errors are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
