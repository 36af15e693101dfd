// Package handler provides the Handler interface and the handler
// building blocks shared by outputs.
//
// The main output lives in the sysloghandler subpackage, which formats
// entries into RFC 3164 packets and sends them to a syslog daemon.
// This package adds:
//
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler adapts the Handler interface to log/slog.Handler,
//     allowing any Handler to serve as a backend for the standard library.
//   - Stats keeps per-handler counters (events, drops, packets, splits)
//     in a github.com/VictoriaMetrics/metrics set.
package handler
