// Package formatter defines how the body of a log entry is rendered.
//
// The Layout interface is what outputs such as the syslog handler
// consume: Format renders one entry, Header and Footer return optional
// session banners, and IgnoresTrace tells the output whether it has to
// send Entry.Trace itself. Layouts that also implement BufferLayout
// can render straight into the output's packet buffer.
//
// Built-in layouts:
//
//   - TextFormatter: "[LEVEL] message key=value", traces left to the output.
//   - JSONFormatter: one JSON object per entry, traces rendered inline.
//   - PatternFormatter: a {tag} template rendered with fasttemplate.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
