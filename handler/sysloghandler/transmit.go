package sysloghandler

import (
	"strconv"
)

// transmitter prepends the PRI part to each packet and hands it to the
// transport. The PRI part is not counted against MaxPacketSize.
type transmitter struct {
	transport Transport
	facility  Facility
	buf       []byte
}

func (t *transmitter) write(severity int, packet string) error {
	t.buf = append(t.buf[:0], '<')
	t.buf = strconv.AppendInt(t.buf, int64(int(t.facility)|severity), 10)
	t.buf = append(t.buf, '>')
	t.buf = append(t.buf, packet...)
	_, err := t.transport.Write(t.buf)
	return err
}
