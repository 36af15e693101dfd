package handler

import (
	"strings"
	"testing"
)

func TestStats(t *testing.T) {
	s := NewStats("app")

	s.IncrementEvents()
	s.IncrementEvents()
	s.IncrementDropped()
	s.IncrementPackets()
	s.IncrementPackets()
	s.IncrementPackets()
	s.IncrementSplits()
	s.IncrementOversize()
	s.IncrementWriteErrors()

	want := Snapshot{Events: 2, Dropped: 1, Packets: 3, Splits: 1, Oversize: 1, WriteErrors: 1}
	if got := s.GetSnapshot(); got != want {
		t.Errorf("GetSnapshot() = %+v, want %+v", got, want)
	}

	s.Reset()
	if got := s.GetSnapshot(); got != (Snapshot{}) {
		t.Errorf("after Reset() = %+v", got)
	}
}

func TestStats_Independent(t *testing.T) {
	a, b := NewStats("a"), NewStats("a")
	a.IncrementEvents()
	if b.GetSnapshot().Events != 0 {
		t.Error("handlers with the same name must not share counters")
	}
}

func TestStats_WritePrometheus(t *testing.T) {
	s := NewStats("audit")
	s.IncrementSplits()

	var sb strings.Builder
	s.WritePrometheus(&sb)
	out := sb.String()

	for _, want := range []string{
		`nlog_syslog_packet_splits_total{handler="audit"} 1`,
		`nlog_syslog_events_total{handler="audit"} 0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
