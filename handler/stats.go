package handler

import (
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// Stats tracks handler statistics. Counters live in a dedicated
// metrics.Set so several handlers can coexist in one process; register
// it with metrics.RegisterSet to expose it on the default /metrics page.
type Stats struct {
	set *metrics.Set

	events      *metrics.Counter
	dropped     *metrics.Counter
	packets     *metrics.Counter
	splits      *metrics.Counter
	oversize    *metrics.Counter
	writeErrors *metrics.Counter
}

// NewStats creates counters labelled with the handler name.
func NewStats(name string) *Stats {
	s := &Stats{set: metrics.NewSet()}
	counter := func(metric string) *metrics.Counter {
		return s.set.NewCounter(fmt.Sprintf(`nlog_syslog_%s_total{handler=%q}`, metric, name))
	}
	s.events = counter("events")
	s.dropped = counter("events_dropped")
	s.packets = counter("packets")
	s.splits = counter("packet_splits")
	s.oversize = counter("packets_oversize")
	s.writeErrors = counter("write_errors")
	return s
}

// IncrementEvents counts an entry accepted for output.
func (s *Stats) IncrementEvents() { s.events.Inc() }

// IncrementDropped counts an entry that could not be sent.
func (s *Stats) IncrementDropped() { s.dropped.Inc() }

// IncrementPackets counts a packet handed to the transport.
func (s *Stats) IncrementPackets() { s.packets.Inc() }

// IncrementSplits counts a packet that had to be divided in two.
func (s *Stats) IncrementSplits() { s.splits.Inc() }

// IncrementOversize counts a packet sent over budget because it could
// not be divided any further.
func (s *Stats) IncrementOversize() { s.oversize.Inc() }

// IncrementWriteErrors counts a failed transport write.
func (s *Stats) IncrementWriteErrors() { s.writeErrors.Inc() }

// Set returns the underlying metrics set.
func (s *Stats) Set() *metrics.Set { return s.set }

// WritePrometheus writes the counters in Prometheus text format.
func (s *Stats) WritePrometheus(w io.Writer) { s.set.WritePrometheus(w) }

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for _, c := range []*metrics.Counter{s.events, s.dropped, s.packets, s.splits, s.oversize, s.writeErrors} {
		c.Set(0)
	}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Events      uint64
	Dropped     uint64
	Packets     uint64
	Splits      uint64
	Oversize    uint64
	WriteErrors uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Events:      s.events.Get(),
		Dropped:     s.dropped.Get(),
		Packets:     s.packets.Get(),
		Splits:      s.splits.Get(),
		Oversize:    s.oversize.Get(),
		WriteErrors: s.writeErrors.Get(),
	}
}
