package logging

import (
	"strings"
	"testing"
)

// tbWriter forwards each written line to testing.TB.Log, so output
// is attributed to the running test and shown only on failure or
// with -v.
type tbWriter struct {
	tb testing.TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NewTestLogger creates an uncolored logger that writes through
// tb.Log.
func NewTestLogger(tb testing.TB, verbose bool) *ConsoleLogger {
	return NewWriterLogger(tbWriter{tb: tb}, verbose, false)
}
