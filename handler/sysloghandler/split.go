package sysloghandler

import (
	"unicode/utf8"
)

// ellipsis is appended to the first half of a split packet.
const ellipsis = "..."

// splitter divides packets that exceed maxBytes. The size test counts
// bytes of the UTF-8 wire form while the split point is chosen on rune
// counts, so halves never cut a multi-byte character.
type splitter struct {
	maxBytes int
	prefix   string

	// emit sends one finished packet. A non-nil error stops the split.
	emit func(packet string) error
	// onSplit is called each time a packet is divided.
	onSplit func()
	// onOversize is called for a packet that is over budget but cannot
	// shrink any further, right before it is emitted as is.
	onOversize func(packet string)
}

// split emits packet, or the ordered halves it breaks down into. header
// must be the header packet starts with; every half starts with it too.
//
// The split point sits at the middle of the part after the header:
//
//	left  = packet[:mid] + "..."
//	right = header + prefix + packet[mid:]
//
// A half that would not be strictly shorter than packet in bytes means the header
// and prefix alone eat the budget; packet is then emitted over budget.
func (s *splitter) split(header, packet string) error {
	if len(packet) <= s.maxBytes {
		return s.emit(packet)
	}

	n := utf8.RuneCountInString(packet)
	h := utf8.RuneCountInString(header)
	at := runeOffset(packet, h+(n-h)/2)

	left := at + len(ellipsis)
	right := len(header) + len(s.prefix) + len(packet) - at
	if left >= len(packet) || right >= len(packet) {
		if s.onOversize != nil {
			s.onOversize(packet)
		}
		return s.emit(packet)
	}

	if s.onSplit != nil {
		s.onSplit()
	}
	if err := s.split(header, packet[:at]+ellipsis); err != nil {
		return err
	}
	return s.split(header, header+s.prefix+packet[at:])
}

// runeOffset returns the byte offset of the n-th rune of s.
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
