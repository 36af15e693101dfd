// Package sysloghandler provides a handler that sends log entries to a
// syslog daemon as RFC 3164 packets.
//
// Every packet is built as
//
//	<PRI>Mmm dd hh:mm:ss hostname [facility:]body
//
// where the body comes from the configured formatter.Layout. The day is
// space padded, and the host name is resolved once per process and falls
// back to UNKNOWN_HOST.
//
// Packets longer than MaxPacketSize bytes (1019 by default, PRI not
// counted) are split in the middle of their body. The first half ends
// with "...", the second half repeats the header followed by the
// configured ContinuationPrefix, and both halves are split again until
// they fit. Each resulting packet is a complete syslog message, so a
// reader of the raw log can follow a long message without any
// reassembly on the receiving side. A packet whose header and prefix
// alone exceed the budget is sent as is and reported.
//
// When the layout does not render traces itself, each line of
// Entry.Trace is sent as its own packet, with a leading tab replaced by
// four spaces.
//
// Layout headers and footers are sent once per handler lifetime: the
// header before the first entry, the footer on Close.
//
// The handler writes synchronously on the calling goroutine. Delivery is
// best effort: a failed write is reported to the ErrorSink, the transport
// is discarded, and subsequent entries are dropped with a report.
package sysloghandler
