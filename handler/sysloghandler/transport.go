package sysloghandler

import (
	"crypto/tls"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Transport carries finished packets to the syslog daemon. Each Write
// call holds exactly one packet. Delivery is best effort: there is no
// acknowledgment and no retry.
type Transport interface {
	io.Writer
	io.Closer
}

// Framer applies stream framing to one packet. Datagram transports send
// packets unframed.
type Framer func(packet []byte) []byte

// DefaultFramer leaves the packet untouched. Used for UDP and unixgram.
func DefaultFramer(packet []byte) []byte {
	return packet
}

// NewlineFramer terminates the packet with LF (RFC 6587 non-transparent
// framing), which is what most daemons expect on TCP.
func NewlineFramer(packet []byte) []byte {
	return append(packet, '\n')
}

// OctetCountingFramer prefixes the packet with its length and a space,
// as defined by RFC 5425.
func OctetCountingFramer(packet []byte) []byte {
	out := make([]byte, 0, len(packet)+8)
	out = strconv.AppendInt(out, int64(len(packet)), 10)
	out = append(out, ' ')
	return append(out, packet...)
}

// ParseFramer maps a framing name from configuration to a Framer. The
// empty name selects the default for the network.
func ParseFramer(name, network string) (Framer, error) {
	switch strings.ToLower(name) {
	case "":
		if isStream(network) {
			return NewlineFramer, nil
		}
		return DefaultFramer, nil
	case "none":
		return DefaultFramer, nil
	case "newline", "lf":
		return NewlineFramer, nil
	case "octet-counting", "octet", "rfc5425":
		return OctetCountingFramer, nil
	default:
		return nil, errors.Errorf("unknown framing %q; supported values are: none, newline, octet-counting", name)
	}
}

func isStream(network string) bool {
	switch network {
	case "tcp", "tcp4", "tcp6", "tcp+tls", "unix":
		return true
	}
	return false
}

// NetTransport is a Transport over a net.Conn.
type NetTransport struct {
	conn   net.Conn
	framer Framer
	buf    []byte
}

// NewNetTransport wraps an established connection. A nil framer sends
// packets unframed.
func NewNetTransport(conn net.Conn, framer Framer) *NetTransport {
	if framer == nil {
		framer = DefaultFramer
	}
	return &NetTransport{conn: conn, framer: framer}
}

// Write frames p and sends it in a single write. The returned count
// refers to p, not to the framed bytes.
func (t *NetTransport) Write(p []byte) (int, error) {
	t.buf = append(t.buf[:0], p...)
	if _, err := t.conn.Write(t.framer(t.buf)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close closes the connection.
func (t *NetTransport) Close() error {
	return t.conn.Close()
}

// LocalAddr returns the local network address of the connection.
func (t *NetTransport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

type dialOptions struct {
	timeout   time.Duration
	tlsConfig *tls.Config
	framer    Framer
}

// DialOption configures Dial.
type DialOption func(*dialOptions)

// WithDialTimeout bounds connection establishment (default: 5s).
func WithDialTimeout(d time.Duration) DialOption {
	return func(o *dialOptions) { o.timeout = d }
}

// WithTLSConfig sets the TLS configuration for the "tcp+tls" network.
func WithTLSConfig(cfg *tls.Config) DialOption {
	return func(o *dialOptions) { o.tlsConfig = cfg }
}

// WithFramer overrides the framing chosen for the network.
func WithFramer(f Framer) DialOption {
	return func(o *dialOptions) { o.framer = f }
}

// localSyslogPaths are tried in order when no network is given.
var localSyslogPaths = []string{"/dev/log", "/var/run/syslog", "/var/run/log"}

// Dial connects to a syslog daemon. Supported networks are udp, udp4,
// udp6, tcp, tcp4, tcp6, tcp+tls, unix and unixgram. An empty network
// connects to the local daemon through its Unix socket.
func Dial(network, address string, opts ...DialOption) (*NetTransport, error) {
	o := dialOptions{timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	framer := o.framer
	if framer == nil {
		var err error
		if framer, err = ParseFramer("", network); err != nil {
			return nil, err
		}
	}

	switch network {
	case "":
		return dialLocal(o.timeout, o.framer)
	case "udp", "udp4", "udp6", "tcp", "tcp4", "tcp6", "unix", "unixgram":
		conn, err := net.DialTimeout(network, address, o.timeout)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot dial syslog at %s://%s", network, address)
		}
		return NewNetTransport(conn, framer), nil
	case "tcp+tls":
		d := &net.Dialer{Timeout: o.timeout}
		conn, err := tls.DialWithDialer(d, "tcp", address, o.tlsConfig)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot dial syslog at tcp+tls://%s", address)
		}
		return NewNetTransport(conn, framer), nil
	default:
		return nil, errors.Errorf("unsupported syslog network %q; supported values are: udp, tcp, tcp+tls, unix, unixgram", network)
	}
}

// dialLocal tries the usual local syslog sockets, datagram first.
func dialLocal(timeout time.Duration, framer Framer) (*NetTransport, error) {
	for _, network := range []string{"unixgram", "unix"} {
		for _, path := range localSyslogPaths {
			conn, err := net.DialTimeout(network, path, timeout)
			if err != nil {
				continue
			}
			f := framer
			if f == nil {
				f, _ = ParseFramer("", network)
			}
			return NewNetTransport(conn, f), nil
		}
	}
	return nil, errors.New("cannot connect to the local syslog daemon")
}
