// Package testingt provides a mock assert.TestingT that records
// failure reports instead of failing the enclosing test. It is used
// to verify the failure paths of assertion helpers.
package testingt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Recorder is a mock.Mock backed TestingT. Expect failures with
// ExpectErrorf and ExpectFailNow; any unexpected report fails the
// real test passed to New.
type Recorder struct {
	mock.Mock
}

// New creates a Recorder that reports unexpected calls to t.
func New(t *testing.T) *Recorder {
	r := &Recorder{}
	r.Test(t)
	return r
}

// Errorf records a formatted failure report.
func (r *Recorder) Errorf(format string, args ...any) {
	r.Called(fmt.Sprintf(format, args...))
}

// FailNow records a fatal failure. Unlike testing.T it returns.
func (r *Recorder) FailNow() {
	r.Called()
}

// Helper satisfies the tHelper interface testify looks for.
func (r *Recorder) Helper() {}

// ExpectErrorf expects exactly one failure report.
func (r *Recorder) ExpectErrorf() *mock.Call {
	return r.On("Errorf", mock.AnythingOfType("string")).Once()
}

// ExpectFailNow expects exactly one fatal failure.
func (r *Recorder) ExpectFailNow() *mock.Call {
	return r.On("FailNow").Once()
}

// Messages returns every failure report recorded so far.
func (r *Recorder) Messages() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Method == "Errorf" {
			out = append(out, c.Arguments.String(0))
		}
	}
	return out
}

// Joined returns all failure reports as a single string.
func (r *Recorder) Joined() string {
	return strings.Join(r.Messages(), "\n")
}
