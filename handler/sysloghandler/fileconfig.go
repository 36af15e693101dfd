package sysloghandler

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/formatter"
)

// FileConfig is the YAML form of the handler configuration:
//
//	name: app
//	network: udp
//	address: logs.example.com:514
//	facility: local3
//	facility_printing: true
//	max_packet_size: "1019"
//	continuation_prefix: "[cont] "
//	level: info
//	layout: pattern
//	pattern: "{level} {message}{fields}"
type FileConfig struct {
	Name               string        `yaml:"name,omitempty"`
	Network            string        `yaml:"network,omitempty"`
	Address            string        `yaml:"address,omitempty"`
	Facility           string        `yaml:"facility,omitempty"`
	FacilityPrinting   bool          `yaml:"facility_printing,omitempty"`
	MaxPacketSize      string        `yaml:"max_packet_size,omitempty"`
	ContinuationPrefix string        `yaml:"continuation_prefix,omitempty"`
	Level              string        `yaml:"level,omitempty"`
	Hostname           string        `yaml:"hostname,omitempty"`
	Framing            string        `yaml:"framing,omitempty"`
	DialTimeout        time.Duration `yaml:"dial_timeout,omitempty"`
	Layout             string        `yaml:"layout,omitempty"`
	Pattern            string        `yaml:"pattern,omitempty"`
	Header             string        `yaml:"header,omitempty"`
	Footer             string        `yaml:"footer,omitempty"`
	IncludeCaller      bool          `yaml:"include_caller,omitempty"`
	TLS                TLSFileConfig `yaml:"tls,omitempty"`
}

// TLSFileConfig configures the "tcp+tls" network.
type TLSFileConfig struct {
	CAFile             string `yaml:"ca_file,omitempty"`
	CertFile           string `yaml:"cert_file,omitempty"`
	KeyFile            string `yaml:"key_file,omitempty"`
	ServerName         string `yaml:"server_name,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read syslog config %q", path)
	}
	fc, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse syslog config %q", path)
	}
	return fc, nil
}

// ParseConfig parses YAML configuration. Unknown keys are rejected.
func ParseConfig(data []byte) (*FileConfig, error) {
	var fc FileConfig
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// ParseLevel converts a level name to a core.Level.
func ParseLevel(s string) (core.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "DEBUG", "ALL":
		return core.DebugLevel, nil
	case "INFO":
		return core.InfoLevel, nil
	case "WARN", "WARNING":
		return core.WarnLevel, nil
	case "ERROR":
		return core.ErrorLevel, nil
	case "FATAL":
		return core.FatalLevel, nil
	case "PANIC":
		return core.PanicLevel, nil
	default:
		return 0, errors.Errorf("unknown level %q", s)
	}
}

// ParseMaxPacketSize parses the packet budget. Empty selects the default.
func ParseMaxPacketSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMaxPacketSize, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid max_packet_size %q", s)
	}
	if n <= 0 {
		return 0, errors.Errorf("invalid max_packet_size %q: must be positive", s)
	}
	return n, nil
}

// Config validates the file configuration and converts it into a
// Config without a transport. Every invalid value is a fatal error.
func (fc *FileConfig) Config() (Config, error) {
	cfg := DefaultConfig()
	if fc.Name != "" {
		cfg.Name = fc.Name
	}

	var err error
	if fc.Facility != "" {
		if cfg.Facility, err = ParseFacility(fc.Facility); err != nil {
			return Config{}, err
		}
	}
	if cfg.MaxPacketSize, err = ParseMaxPacketSize(fc.MaxPacketSize); err != nil {
		return Config{}, err
	}
	if cfg.Level, err = ParseLevel(fc.Level); err != nil {
		return Config{}, err
	}
	if cfg.Layout, err = fc.layout(); err != nil {
		return Config{}, err
	}
	if _, err = ParseFramer(fc.Framing, fc.Network); err != nil {
		return Config{}, err
	}

	cfg.FacilityPrinting = fc.FacilityPrinting
	cfg.ContinuationPrefix = fc.ContinuationPrefix
	cfg.Hostname = fc.Hostname
	return cfg, nil
}

func (fc *FileConfig) layout() (formatter.Layout, error) {
	fcfg := formatter.Config{
		IncludeCaller: fc.IncludeCaller,
		HeaderText:    fc.Header,
		FooterText:    fc.Footer,
	}
	switch strings.ToLower(fc.Layout) {
	case "", "text":
		return formatter.NewTextFormatter(fcfg), nil
	case "json":
		return formatter.NewJSONFormatter(fcfg), nil
	case "pattern":
		return formatter.NewPatternFormatter(fc.Pattern, fcfg)
	case "raw":
		return nil, nil
	default:
		return nil, errors.Errorf("unknown layout %q; supported values are: text, json, pattern, raw", fc.Layout)
	}
}

// Dial opens the transport described by the configuration.
func (fc *FileConfig) Dial() (*NetTransport, error) {
	framer, err := ParseFramer(fc.Framing, fc.Network)
	if err != nil {
		return nil, err
	}
	opts := []DialOption{WithFramer(framer)}
	if fc.Network == "" {
		// Framing of the local socket depends on the socket type found.
		opts = nil
	}
	if fc.DialTimeout > 0 {
		opts = append(opts, WithDialTimeout(fc.DialTimeout))
	}
	if fc.Network == "tcp+tls" {
		tc, err := TLSConfig(fc.TLS.CertFile, fc.TLS.KeyFile, fc.TLS.CAFile, fc.TLS.ServerName, fc.TLS.InsecureSkipVerify)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithTLSConfig(tc))
	}
	return Dial(fc.Network, fc.Address, opts...)
}

// Open validates the configuration, dials the transport and creates the
// handler. errSink may be nil.
func (fc *FileConfig) Open(errSink ErrorSink) (*Handler, error) {
	cfg, err := fc.Config()
	if err != nil {
		return nil, err
	}
	t, err := fc.Dial()
	if err != nil {
		return nil, err
	}
	cfg.Transport = t
	cfg.ErrorSink = errSink
	return New(cfg), nil
}
