package main

import (
	"github.com/urfave/cli/v2"
)

const (
	flagConfig             = "config"
	flagName               = "name"
	flagNetwork            = "network"
	flagAddress            = "address"
	flagFacility           = "facility"
	flagFacilityPrinting   = "facility-printing"
	flagMaxPacketSize      = "max-packet-size"
	flagContinuationPrefix = "continuation-prefix"
	flagLevel              = "level"
	flagHostname           = "hostname"
	flagFraming            = "framing"
	flagDialTimeout        = "dial-timeout"
	flagTLSCAFile          = "tls-ca-file"
	flagTLSCertFile        = "tls-cert-file"
	flagTLSKeyFile         = "tls-key-file"
	flagTLSServerName      = "tls-server-name"
	flagTLSInsecure        = "tls-insecure-skip-verify"
	flagDryRun             = "dry-run"
	flagMetrics            = "metrics"
)

var flags = []cli.Flag{
	&cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Usage:   "Path to a YAML handler configuration. Flags set on the command line override its values",
	},
	&cli.StringFlag{
		Name:  flagName,
		Value: "syslogcat",
		Usage: "Handler name used in diagnostics and metrics",
	},
	&cli.StringFlag{
		Name:    flagNetwork,
		Aliases: []string{"n"},
		Usage:   "Network to use: udp, tcp, tcp+tls, unix or unixgram. Empty connects to the local syslog daemon",
	},
	&cli.StringFlag{
		Name:    flagAddress,
		Aliases: []string{"a"},
		Usage:   "Syslog server address, e.g. logs.example.com:514",
		EnvVars: []string{"SYSLOG_ADDRESS"},
	},
	&cli.StringFlag{
		Name:    flagFacility,
		Aliases: []string{"f"},
		Value:   "user",
		Usage:   "Syslog facility name, e.g. daemon or local3",
	},
	&cli.BoolFlag{
		Name:  flagFacilityPrinting,
		Usage: "Whether to prefix every message with \"<facility>:\"",
	},
	&cli.StringFlag{
		Name:  flagMaxPacketSize,
		Value: "1019",
		Usage: "Maximum packet size in bytes, excluding the priority part. Longer messages are split",
	},
	&cli.StringFlag{
		Name:  flagContinuationPrefix,
		Usage: "Text starting every packet that continues a split message, e.g. \"[cont] \"",
	},
	&cli.StringFlag{
		Name:    flagLevel,
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "Level of the sent messages: debug, info, warn, error, fatal or panic",
	},
	&cli.StringFlag{
		Name:  flagHostname,
		Usage: "Host name written into packet headers. Defaults to the local host name",
	},
	&cli.StringFlag{
		Name:  flagFraming,
		Usage: "Stream framing: none, newline or octet-counting. Defaults to newline for stream networks",
	},
	&cli.DurationFlag{
		Name:  flagDialTimeout,
		Usage: "Timeout for connecting to the syslog server",
	},
	&cli.StringFlag{
		Name:  flagTLSCAFile,
		Usage: "Optional path to a TLS CA file to verify the server certificate with",
	},
	&cli.StringFlag{
		Name:  flagTLSCertFile,
		Usage: "Optional path to a client TLS certificate file",
	},
	&cli.StringFlag{
		Name:  flagTLSKeyFile,
		Usage: "Optional path to a client TLS key file",
	},
	&cli.StringFlag{
		Name:  flagTLSServerName,
		Usage: "Optional TLS server name used to verify the server certificate",
	},
	&cli.BoolFlag{
		Name:  flagTLSInsecure,
		Usage: "Whether to skip verification of the server certificate",
	},
	&cli.BoolFlag{
		Name:  flagDryRun,
		Usage: "Print the packets to stdout instead of sending them",
	},
	&cli.BoolFlag{
		Name:  flagMetrics,
		Usage: "Print handler counters in Prometheus text format to stderr on exit",
	},
}
