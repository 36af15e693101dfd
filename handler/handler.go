package handler

import (
	"github.com/philipp01105/nlog-syslog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry. The handler must not keep the entry
	// after Handle returns.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that keep Stats.
type StatsProvider interface {
	Stats() Snapshot
}
