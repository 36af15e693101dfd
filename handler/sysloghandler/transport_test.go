package sysloghandler

import (
	"bufio"
	"net"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/leodido/go-syslog/v4/rfc3164"

	"github.com/philipp01105/nlog-syslog/core"
)

func TestOctetCountingFramer(t *testing.T) {
	got := string(OctetCountingFramer([]byte("<14>hello")))
	if got != "9 <14>hello" {
		t.Errorf("OctetCountingFramer() = %q", got)
	}
}

func TestParseFramer(t *testing.T) {
	tests := []struct {
		name    string
		network string
		want    Framer
		wantErr bool
	}{
		{"", "udp", DefaultFramer, false},
		{"", "unixgram", DefaultFramer, false},
		{"", "tcp", NewlineFramer, false},
		{"", "tcp+tls", NewlineFramer, false},
		{"none", "tcp", DefaultFramer, false},
		{"newline", "udp", NewlineFramer, false},
		{"octet-counting", "tcp", OctetCountingFramer, false},
		{"RFC5425", "tcp", OctetCountingFramer, false},
		{"chunked", "tcp", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.network, func(t *testing.T) {
			got, err := ParseFramer(tt.name, tt.network)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFramer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if reflect.ValueOf(got).Pointer() != reflect.ValueOf(tt.want).Pointer() {
				t.Errorf("ParseFramer(%q, %q) returned the wrong framer", tt.name, tt.network)
			}
		})
	}
}

func TestDial_UnsupportedNetwork(t *testing.T) {
	if _, err := Dial("sctp", "127.0.0.1:514"); err == nil {
		t.Error("Expected error for unsupported network")
	}
}

func TestDial_UDP(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen on udp: %v", err)
	}
	defer pc.Close()

	tr, err := Dial("udp", pc.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	cfg := DefaultConfig()
	cfg.Transport = tr
	cfg.Facility = Local4
	cfg.Hostname = "testhost"
	cfg.ErrorSink = &recordingSink{}
	h := New(cfg)
	defer h.Close()

	if err := h.Handle(testEntry(core.WarnLevel, "app: disk almost full")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	buf := make([]byte, 2048)
	_ = pc.SetReadDeadline(time.Now().Add(5 * time.Second))
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if got := string(buf[:n]); got != "<164>"+testHeader+"app: disk almost full" {
		t.Errorf("datagram = %q", got)
	}

	m, _ := rfc3164.NewParser(rfc3164.WithBestEffort()).Parse(buf[:n])
	if m == nil {
		t.Fatal("rfc3164 parser rejected the packet")
	}
	msg := m.(*rfc3164.SyslogMessage)
	if msg.Priority == nil || *msg.Priority != 164 {
		t.Errorf("Priority = %v, want 164", msg.Priority)
	}
	if msg.Hostname == nil || *msg.Hostname != "testhost" {
		t.Errorf("Hostname = %v, want testhost", msg.Hostname)
	}
}

func TestDial_TCPNewlineFraming(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen on tcp: %v", err)
	}
	defer ln.Close()

	lines := make(chan string, 8)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- line
		}
	}()

	tr, err := Dial("tcp", ln.Addr().String(), WithDialTimeout(time.Second))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	cfg := DefaultConfig()
	cfg.Transport = tr
	cfg.Hostname = "testhost"
	cfg.ErrorSink = &recordingSink{}
	h := New(cfg)

	_ = h.Handle(testEntry(core.InfoLevel, "first"))
	_ = h.Handle(testEntry(core.ErrorLevel, "second"))
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got []string
	for line := range lines {
		got = append(got, line)
	}
	want := []string{
		"<14>" + testHeader + "first\n",
		"<11>" + testHeader + "second\n",
	}
	if strings.Join(got, "") != strings.Join(want, "") {
		t.Errorf("stream = %q, want %q", got, want)
	}
}

func TestNetTransport_WriteCount(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	tr := NewNetTransport(client, OctetCountingFramer)
	defer tr.Close()

	done := make(chan string, 1)
	go func() {
		buf := make([]byte, 64)
		n, _ := server.Read(buf)
		done <- string(buf[:n])
	}()

	n, err := tr.Write([]byte("<14>x"))
	if err != nil || n != 5 {
		t.Errorf("Write() = %d, %v; want 5, nil", n, err)
	}
	if got := <-done; got != "5 <14>x" {
		t.Errorf("framed write = %q", got)
	}
}

func TestWriterTransport(t *testing.T) {
	var sb strings.Builder
	tr := NewWriterTransport(&sb)

	cfg := DefaultConfig()
	cfg.Transport = tr
	cfg.Hostname = "testhost"
	cfg.ErrorSink = &recordingSink{}
	h := New(cfg)

	_ = h.Handle(testEntry(core.InfoLevel, "one"))
	_ = h.Handle(testEntry(core.DebugLevel, "two"))
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := "<14>" + testHeader + "one\n<15>" + testHeader + "two\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestTLSConfig(t *testing.T) {
	cfg, err := TLSConfig("", "", "", "logs.example.com", false)
	if err != nil {
		t.Fatalf("TLSConfig() error = %v", err)
	}
	if cfg.ServerName != "logs.example.com" || cfg.RootCAs != nil || len(cfg.Certificates) != 0 {
		t.Errorf("TLSConfig() = %+v", cfg)
	}

	if _, err := TLSConfig("", "", "/nonexistent/ca.pem", "", false); err == nil {
		t.Error("Expected error for missing CA file")
	}
	if _, err := TLSConfig("/nonexistent/cert.pem", "/nonexistent/key.pem", "", "", false); err == nil {
		t.Error("Expected error for missing certificate")
	}
}
