package sysloghandler

import (
	"time"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/formatter"
)

const (
	// DefaultMaxPacketSize keeps packets within what UDP syslog
	// receivers accept without truncation.
	DefaultMaxPacketSize = 1019

	// DefaultName is used in diagnostics when Config.Name is empty.
	DefaultName = "syslog"
)

// Config holds configuration for the syslog handler
type Config struct {
	// Name identifies the handler in diagnostics and metrics (default: "syslog")
	Name string
	// Transport receives the packets. A nil Transport makes every entry
	// fail with a "no syslog host" report.
	Transport Transport
	// Layout renders the entry body (default: the raw message)
	Layout formatter.Layout
	// ErrorSink receives diagnostics (default: zap production logger on stderr)
	ErrorSink ErrorSink
	// Level is the minimum level sent (zero value: DebugLevel)
	Level core.Level
	// Facility of all packets. The zero value is Kern; use
	// DefaultConfig to start from User.
	Facility Facility
	// FacilityPrinting adds "<facility>:" in front of every body
	FacilityPrinting bool
	// MaxPacketSize is the byte budget of a packet, PRI excluded (default: 1019)
	MaxPacketSize int
	// ContinuationPrefix starts the body of every packet that continues
	// a split message, e.g. "[cont] ".
	ContinuationPrefix string
	// Hostname overrides the resolved local host name in packet headers
	Hostname string
	// Location converts timestamps before formatting (default: the
	// entry's own location)
	Location *time.Location
}

// DefaultConfig returns the configuration of a handler logging to the
// user facility with the default packet size.
func DefaultConfig() Config {
	return Config{
		Name:          DefaultName,
		Level:         core.DebugLevel,
		Facility:      User,
		MaxPacketSize: DefaultMaxPacketSize,
	}
}

// applySyslogDefaults fills in zero-value fields with defaults.
func applySyslogDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.MaxPacketSize <= 0 {
		cfg.MaxPacketSize = DefaultMaxPacketSize
	}
	if cfg.ErrorSink == nil {
		cfg.ErrorSink = defaultErrorSink(cfg.Name)
	}
}
