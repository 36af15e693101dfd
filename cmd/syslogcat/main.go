// Command syslogcat sends lines to a syslog server, in the spirit of
// logger(1). Messages are taken from the arguments or, without
// arguments, one per line from stdin. Long messages are split into
// several packets.
//
//	tail -f app.log | syslogcat -n udp -a logs.example.com:514 -f local3 --continuation-prefix "[cont] "
package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/nlog-syslog/handler/sysloghandler"
	"github.com/philipp01105/nlog-syslog/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		zap.L().Fatal("syslogcat failed", zap.Error(err))
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "syslogcat",
		Usage:     "Send messages to a syslog server",
		ArgsUsage: "[message...]",
		Flags:     flags,
		Before: func(c *cli.Context) error {
			l, err := zap.NewProduction()
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(l.Named("syslogcat"))
			return nil
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	fc, err := fileConfig(c)
	if err != nil {
		return err
	}
	level, err := sysloghandler.ParseLevel(c.String(flagLevel))
	if err != nil {
		return err
	}

	h, err := openHandler(c, fc)
	if err != nil {
		return err
	}

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.DebugLevel).
		Build()

	if c.Args().Present() {
		log.Log(level, strings.Join(c.Args().Slice(), " "))
	} else {
		err = sendLines(log, level, c.App.Reader)
	}

	err = multierr.Append(err, log.Close())
	if c.Bool(flagMetrics) {
		h.Metrics().WritePrometheus(c.App.ErrWriter)
	}
	return err
}

// fileConfig loads --config, if any, and applies the flags set on the
// command line on top of it. Without --config every flag applies.
func fileConfig(c *cli.Context) (*sysloghandler.FileConfig, error) {
	fc := &sysloghandler.FileConfig{Layout: "raw"}
	fromFile := c.IsSet(flagConfig)
	if fromFile {
		var err error
		if fc, err = sysloghandler.LoadConfig(c.String(flagConfig)); err != nil {
			return nil, err
		}
	}
	apply := func(name string) bool {
		return !fromFile || c.IsSet(name)
	}

	if apply(flagName) {
		fc.Name = c.String(flagName)
	}
	if apply(flagNetwork) {
		fc.Network = c.String(flagNetwork)
	}
	if apply(flagAddress) {
		fc.Address = c.String(flagAddress)
	}
	if apply(flagFacility) {
		fc.Facility = c.String(flagFacility)
	}
	if apply(flagFacilityPrinting) {
		fc.FacilityPrinting = c.Bool(flagFacilityPrinting)
	}
	if apply(flagMaxPacketSize) {
		fc.MaxPacketSize = c.String(flagMaxPacketSize)
	}
	if apply(flagContinuationPrefix) {
		fc.ContinuationPrefix = c.String(flagContinuationPrefix)
	}
	if apply(flagHostname) {
		fc.Hostname = c.String(flagHostname)
	}
	if apply(flagFraming) {
		fc.Framing = c.String(flagFraming)
	}
	if apply(flagDialTimeout) {
		fc.DialTimeout = c.Duration(flagDialTimeout)
	}
	if apply(flagTLSCAFile) {
		fc.TLS.CAFile = c.String(flagTLSCAFile)
	}
	if apply(flagTLSCertFile) {
		fc.TLS.CertFile = c.String(flagTLSCertFile)
	}
	if apply(flagTLSKeyFile) {
		fc.TLS.KeyFile = c.String(flagTLSKeyFile)
	}
	if apply(flagTLSServerName) {
		fc.TLS.ServerName = c.String(flagTLSServerName)
	}
	if apply(flagTLSInsecure) {
		fc.TLS.InsecureSkipVerify = c.Bool(flagTLSInsecure)
	}
	return fc, nil
}

// openHandler creates the handler. With --dry-run packets go to the
// app's output instead of the network.
func openHandler(c *cli.Context, fc *sysloghandler.FileConfig) (*sysloghandler.Handler, error) {
	errSink := sysloghandler.NewZapErrorSink(zap.L())
	if !c.Bool(flagDryRun) {
		return fc.Open(errSink)
	}
	cfg, err := fc.Config()
	if err != nil {
		return nil, err
	}
	cfg.Transport = sysloghandler.NewWriterTransport(c.App.Writer)
	cfg.ErrorSink = errSink
	return sysloghandler.New(cfg), nil
}

// sendLines logs every non-empty line of r.
func sendLines(log *logger.Logger, level logger.Level, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			log.Log(level, line)
		}
	}
	return errors.Wrap(sc.Err(), "cannot read input")
}
