package sysloghandler

import (
	"os"
	"sync"
	"time"
)

// UnknownHost is used in packet headers when the local host name cannot
// be resolved.
const UnknownHost = "UNKNOWN_HOST"

// headerLayout is the RFC 3164 TIMESTAMP followed by a space. The "_2"
// directive pads days 1-9 with a space instead of a zero.
const headerLayout = "Jan _2 15:04:05 "

var (
	osHostname = os.Hostname

	localHostnameOnce sync.Once
	localHostname     string
)

// resolveHostname returns the process-wide host name, looked up once.
func resolveHostname() string {
	localHostnameOnce.Do(func() {
		name, err := osHostname()
		if err != nil || name == "" {
			name = UnknownHost
		}
		localHostname = name
	})
	return localHostname
}

// headerBuilder produces the HEADER part of a packet: timestamp and
// host name, each followed by a space.
type headerBuilder struct {
	hostname string
	loc      *time.Location
}

func newHeaderBuilder(hostname string, loc *time.Location) *headerBuilder {
	if hostname == "" {
		hostname = resolveHostname()
	}
	return &headerBuilder{hostname: hostname, loc: loc}
}

func (b *headerBuilder) build(t time.Time) string {
	if b.loc != nil {
		t = t.In(b.loc)
	}
	buf := make([]byte, 0, len(headerLayout)+len(b.hostname)+1)
	buf = t.AppendFormat(buf, headerLayout)
	buf = append(buf, b.hostname...)
	buf = append(buf, ' ')
	return string(buf)
}
