package sysloghandler

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// TLSConfig creates a tls.Config for the "tcp+tls" network from file
// paths. Empty paths are skipped: no client certificate, system roots.
func TLSConfig(certFile, keyFile, caFile, serverName string, insecureSkipVerify bool) (*tls.Config, error) {
	var certs []tls.Certificate
	if certFile != "" {
		cert, err := tls.LoadX509KeyPair(certFile, keyFile)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot load TLS certificate from cert_file=%q, key_file=%q", certFile, keyFile)
		}
		certs = []tls.Certificate{cert}
	}

	var rootCAs *x509.CertPool
	if caFile != "" {
		pem, err := os.ReadFile(caFile)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read ca_file %q", caFile)
		}
		rootCAs = x509.NewCertPool()
		if !rootCAs.AppendCertsFromPEM(pem) {
			return nil, errors.Errorf("cannot parse data from ca_file %q", caFile)
		}
	}

	return &tls.Config{
		Certificates:       certs,
		InsecureSkipVerify: insecureSkipVerify,
		RootCAs:            rootCAs,
		ServerName:         serverName,
		MinVersion:         tls.VersionTLS12,
	}, nil
}
