package sysloghandler

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/formatter"
	"github.com/philipp01105/nlog-syslog/handler"
)

const (
	// splitThreshold is the packet length in characters above which a
	// packet is handed to the splitter. Shorter packets are sent as is;
	// the limit is a heuristic and does not bound their size in bytes.
	splitThreshold = 256

	// traceIndent replaces the leading tab of trace lines.
	traceIndent = "    "
)

var (
	// ErrNoTransport is returned by Handle when no transport is set or
	// the transport was discarded after a write failure.
	ErrNoTransport = errors.New("no syslog transport")

	// ErrClosed is returned by Handle after Close.
	ErrClosed = errors.New("syslog handler is closed")
)

// Handler formats entries into RFC 3164 packets and writes them to a
// Transport. Packets longer than MaxPacketSize are split into several
// packets that each carry the same header.
//
// Handler is safe for concurrent use. The packets of one entry are
// written back to back, and nothing is written after Close.
type Handler struct {
	name             string
	level            core.Level
	layout           formatter.Layout
	bufferLayout     formatter.BufferLayout
	errs             ErrorSink
	headers          *headerBuilder
	facility         Facility
	facilityTag      string
	facilityPrinting bool
	stats            *handler.Stats
	now              func() time.Time

	mu            sync.Mutex // guards everything below
	tx            *transmitter
	splitter      splitter
	severity      int
	headerChecked bool
	closed        bool
	buf           bytes.Buffer
}

// New creates a syslog handler. An unknown facility is reported to the
// ErrorSink and replaced by User.
func New(cfg Config) *Handler {
	applySyslogDefaults(&cfg)

	h := &Handler{
		name:             cfg.Name,
		level:            cfg.Level,
		layout:           cfg.Layout,
		errs:             cfg.ErrorSink,
		headers:          newHeaderBuilder(cfg.Hostname, cfg.Location),
		facilityPrinting: cfg.FacilityPrinting,
		stats:            handler.NewStats(cfg.Name),
		now:              time.Now,
	}
	h.facility, h.facilityTag = facilityTag(cfg.Facility, h.errs.Report)
	h.bufferLayout, _ = cfg.Layout.(formatter.BufferLayout)

	if cfg.Transport != nil {
		h.tx = &transmitter{transport: cfg.Transport, facility: h.facility}
	}

	h.splitter = splitter{
		maxBytes: cfg.MaxPacketSize,
		prefix:   cfg.ContinuationPrefix,
		emit: func(packet string) error {
			return h.send(h.severity, packet)
		},
		onSplit: h.stats.IncrementSplits,
		onOversize: func(packet string) {
			h.stats.IncrementOversize()
			h.errs.Report(fmt.Sprintf("Packet of %d bytes exceeds the maximum packet size of %d bytes and cannot be split further; sending it as is.",
				len(packet), cfg.MaxPacketSize))
		},
	}

	h.buf.Grow(512)
	return h
}

// Handle formats the entry and writes its packets. Failures are reported
// to the ErrorSink and returned; the entry is dropped.
func (h *Handler) Handle(entry *core.Entry) error {
	if entry.Level < h.level {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		h.stats.IncrementDropped()
		h.errs.Report(fmt.Sprintf("Attempted to append to closed syslog handler named %q.", h.name))
		return ErrClosed
	}
	if h.tx == nil {
		h.stats.IncrementDropped()
		h.errs.Report(fmt.Sprintf("No syslog host is set for syslog handler named %q.", h.name))
		return ErrNoTransport
	}

	if !h.headerChecked {
		if h.layout != nil {
			if banner := h.layout.Header(); banner != "" {
				h.sendLayoutMessage(banner)
			}
		}
		h.headerChecked = true
	}

	h.stats.IncrementEvents()
	hdr := h.headers.build(entry.Time)
	packet := h.assemble(hdr, entry)
	h.severity = entry.Level.Severity()

	var err error
	if utf8.RuneCountInString(packet) > splitThreshold {
		err = h.splitter.split(hdr, packet)
	} else {
		err = h.send(h.severity, packet)
	}
	if err != nil {
		h.stats.IncrementDropped()
		return err
	}

	if h.layout == nil || h.layout.IgnoresTrace() {
		for _, line := range entry.Trace {
			if strings.HasPrefix(line, "\t") {
				line = hdr + traceIndent + line[1:]
			} else {
				line = hdr + line
			}
			if err := h.send(h.severity, line); err != nil {
				h.stats.IncrementDropped()
				return err
			}
		}
	}
	return nil
}

// assemble builds header + facility tag + body.
func (h *Handler) assemble(hdr string, entry *core.Entry) string {
	h.buf.Reset()
	h.buf.WriteString(hdr)
	if h.facilityPrinting {
		h.buf.WriteString(h.facilityTag)
	}
	switch {
	case h.bufferLayout != nil:
		h.bufferLayout.FormatEntry(entry, &h.buf)
	case h.layout != nil:
		h.buf.WriteString(h.layout.Format(entry))
	default:
		h.buf.WriteString(entry.Message)
	}
	return h.buf.String()
}

// sendLayoutMessage writes a layout header or footer as a single
// informational packet stamped with the current time.
func (h *Handler) sendLayoutMessage(msg string) {
	packet := h.headers.build(h.now())
	if h.facilityPrinting {
		packet += h.facilityTag
	}
	_ = h.send(core.SeverityInfo, packet+msg)
}

// send writes one packet. On failure the transport is closed and
// discarded; later entries get ErrNoTransport.
func (h *Handler) send(severity int, packet string) error {
	if h.tx == nil {
		return ErrNoTransport
	}
	if err := h.tx.write(severity, packet); err != nil {
		h.stats.IncrementWriteErrors()
		h.errs.Report(fmt.Sprintf("Failed to write to syslog handler named %q: %v. Discarding the transport.", h.name, err))
		_ = h.tx.transport.Close()
		h.tx = nil
		return errors.Wrap(err, "cannot write syslog packet")
	}
	h.stats.IncrementPackets()
	return nil
}

// Close sends the layout footer if a header was sent, then closes the
// transport. Close errors caused by cancellation or a deadline are
// returned; any other close error is absorbed. Close is idempotent.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if h.tx == nil {
		return nil
	}
	if h.headerChecked && h.layout != nil {
		if footer := h.layout.Footer(); footer != "" {
			h.sendLayoutMessage(footer)
		}
	}
	if h.tx == nil {
		return nil
	}

	err := h.tx.transport.Close()
	h.tx = nil
	if isInterruption(err) {
		return err
	}
	return nil
}

func isInterruption(err error) bool {
	return err != nil && (errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded))
}

// Name returns the handler name used in diagnostics.
func (h *Handler) Name() string { return h.name }

// Facility returns the effective facility, after unknown values were
// replaced by User.
func (h *Handler) Facility() Facility { return h.facility }

// FacilityTag returns the "<facility>:" prefix, whether or not facility
// printing is on.
func (h *Handler) FacilityTag() string { return h.facilityTag }

// Stats returns a snapshot of the current statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Metrics returns the handler's counters, e.g. to register them with
// metrics.RegisterSet(h.Metrics().Set()).
func (h *Handler) Metrics() *handler.Stats {
	return h.stats
}
