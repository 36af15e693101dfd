// Package core defines the shared types used across nlog-syslog.
//
// It provides the Level type for severity filtering and its mapping to
// syslog severities, the Entry type that represents a single log event,
// and the Field type for structured key-value pairs.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
// Handlers never keep a reference to an Entry after Handle returns.
//
// An Entry may carry Trace, the ordered lines of an error's stack trace.
// TraceLines renders an error into that form; errors created with
// github.com/pkg/errors contribute their stack frames, whose location
// lines are tab-indented.
package core
