package throwable

import (
	"fmt"
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// ExceptionNotThrownError reports that an operation expected to
// raise an error completed normally.
type ExceptionNotThrownError struct {
	msg string
}

func (e *ExceptionNotThrownError) Error() string {
	return e.msg
}

// ErrExceptionNotThrown is returned, unwrapped, by Capture when the
// operation neither returned an error nor panicked.
var ErrExceptionNotThrown error = &ExceptionNotThrownError{
	msg: "expected an exception",
}

// PanicError wraps a recovered panic value that is not itself an
// error.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack at the point of recovery.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func newPanicError(value any) *PanicError {
	return &PanicError{Value: value, Stack: debug.Stack()}
}

var errMissingOperation = errors.New("missing operation")
