package core

import (
	"fmt"
	"strings"
)

// TraceLines renders err into the line-per-frame form carried by
// Entry.Trace. The first line is the error message. Errors that know
// how to print their stack with %+v (github.com/pkg/errors does) add one
// line per function and one tab-indented line per source location.
// A nil error yields nil.
func TraceLines(err error) []string {
	if err == nil {
		return nil
	}
	text := strings.TrimRight(fmt.Sprintf("%+v", err), "\n")
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
