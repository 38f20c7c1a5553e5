// Package throwable captures an error raised by a piece of code so a
// test can assert on it afterwards.
//
// An operation raises by returning a non-nil error or by panicking.
// Only errors raised on the calling goroutine are captured.
//
//	throwable.AssertThrows(t, func() error {
//		return parse("bad input")
//	}).
//		IsInstanceOf(new(*SyntaxError)).
//		ContainsInMessage("line 1")
package throwable

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.alchemy/internal/check"
	"digital.vasic.alchemy/pkg/logging"
)

// Operation is a unit of code expected to raise an error.
type Operation func() error

type tHelper interface {
	Helper()
}

// Option configures Capture.
type Option func(*options)

type options struct {
	logger logging.Logger
}

// WithLogger sets the logger used to trace captures.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Assertion is a handle over a captured error. A valid Assertion
// always wraps a non-nil error.
type Assertion struct {
	t      assert.TestingT
	caught error
}

// Capture runs op on the calling goroutine and returns a handle over
// the error it raised. A returned error or a panic with an error
// value is captured unchanged; any other panic value is wrapped in a
// *PanicError. If op raises nothing, Capture returns
// ErrExceptionNotThrown.
func Capture(op Operation, opts ...Option) (*Assertion, error) {
	o := options{logger: logging.NullLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	if op == nil {
		return nil, errMissingOperation
	}

	caught := run(op)
	if caught == nil {
		o.logger.Debug("operation completed without raising")
		return nil, ErrExceptionNotThrown
	}

	o.logger.Debug("captured error",
		logging.StringField("type", fmt.Sprintf("%T", caught)),
		logging.ErrorField(caught),
	)
	return &Assertion{caught: caught}, nil
}

func run(op Operation) (caught error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok {
			caught = err
			return
		}
		caught = newPanicError(r)
	}()
	return op()
}

// AssertThrows captures the error raised by op and binds the handle
// to t. When op raises nothing, the test fails immediately and nil is
// returned.
func AssertThrows(t require.TestingT, op Operation, opts ...Option) *Assertion {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	a, err := Capture(op, opts...)
	if err != nil {
		require.Fail(t, "expected operation to raise an error", err.Error())
		return nil
	}
	return a.With(t)
}

// AssertPanics is AssertThrows for code that can only fail by
// panicking.
func AssertPanics(t require.TestingT, fn func(), opts ...Option) *Assertion {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	var op Operation
	if fn != nil {
		op = func() error {
			fn()
			return nil
		}
	}
	return AssertThrows(t, op, opts...)
}

// With returns a copy of the handle that reports failures to t.
func (a *Assertion) With(t assert.TestingT) *Assertion {
	return &Assertion{t: t, caught: a.caught}
}

// Err returns the captured error instance.
func (a *Assertion) Err() error {
	return a.caught
}

func (a *Assertion) testingT() assert.TestingT {
	check.That(a.t != nil, "throwable: no TestingT bound, call With first")
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	return a.t
}

// IsInstanceOf asserts that the captured error's dynamic type is
// assignable to the type target points to. target must be a non-nil
// pointer to an error type or to an interface type, as with
// errors.As. Only the captured error itself is checked, not its
// cause. Wrappers that keep the message unchanged, such as stack
// traces, are seen through.
func (a *Assertion) IsInstanceOf(target any, msgAndArgs ...any) *Assertion {
	t := a.testingT()

	want := targetType(target)
	self := layers(a.caught)
	if !anyInstanceOf(self, want) {
		shown := self[len(self)-1]
		assert.Fail(t, fmt.Sprintf(
			"expected error of type %s, but was %T: %v",
			want, shown, shown,
		), msgAndArgs...)
	}
	return a
}

// HasMessage asserts that the captured error's message is exactly
// expected.
func (a *Assertion) HasMessage(expected string, msgAndArgs ...any) *Assertion {
	assert.Equal(a.testingT(), expected, a.caught.Error(), msgAndArgs...)
	return a
}

// ContainsInMessage asserts that the captured error's message
// contains substr.
func (a *Assertion) ContainsInMessage(substr string, msgAndArgs ...any) *Assertion {
	assert.Contains(a.testingT(), a.caught.Error(), substr, msgAndArgs...)
	return a
}

// HasNoCause asserts that the captured error wraps nothing.
func (a *Assertion) HasNoCause(msgAndArgs ...any) *Assertion {
	t := a.testingT()

	if cause := causeOf(a.caught); cause != nil {
		shown := cause[len(cause)-1]
		assert.Fail(t, fmt.Sprintf(
			"expected no cause, but found %T: %v", shown, shown,
		), msgAndArgs...)
	}
	return a
}

// HasCauseInstanceOf asserts that the error directly wrapped by the
// captured error exists and is assignable to the type target points
// to.
func (a *Assertion) HasCauseInstanceOf(target any, msgAndArgs ...any) *Assertion {
	t := a.testingT()

	want := targetType(target)
	cause := causeOf(a.caught)
	switch {
	case cause == nil:
		assert.Fail(t, fmt.Sprintf(
			"expected a cause of type %s, but there was none", want,
		), msgAndArgs...)
	case !anyInstanceOf(cause, want):
		shown := cause[len(cause)-1]
		assert.Fail(t, fmt.Sprintf(
			"expected a cause of type %s, but was %T: %v",
			want, shown, shown,
		), msgAndArgs...)
	}
	return a
}

// Is asserts that target is in the captured error's chain.
func (a *Assertion) Is(target error, msgAndArgs ...any) *Assertion {
	assert.ErrorIs(a.testingT(), a.caught, target, msgAndArgs...)
	return a
}

// As finds the first error in the captured chain that matches E.
func As[E error](a *Assertion) (E, bool) {
	var target E
	ok := errors.As(a.caught, &target)
	return target, ok
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func targetType(target any) reflect.Type {
	check.NotNil(target, "throwable: target must be a non-nil pointer")
	typ := reflect.TypeOf(target)
	check.That(typ.Kind() == reflect.Pointer,
		"throwable: target must be a non-nil pointer, got %T", target)

	elem := typ.Elem()
	check.That(elem.Kind() == reflect.Interface || elem.Implements(errorType),
		"throwable: *target must be an interface or implement error, got %s", elem)
	return elem
}

// layers returns err followed by every error it wraps that carries
// the same message. Those inner layers add only stack traces or
// other metadata, so they stand for the same error.
func layers(err error) []error {
	run := []error{err}
	msg := err.Error()
	for inner := errors.UnwrapOnce(err); inner != nil; inner = errors.UnwrapOnce(inner) {
		if inner.Error() != msg {
			break
		}
		run = append(run, inner)
	}
	return run
}

// causeOf returns the layers of the first error under err whose
// message differs from err's, or nil when there is none.
func causeOf(err error) []error {
	self := layers(err)
	inner := errors.UnwrapOnce(self[len(self)-1])
	if inner == nil {
		return nil
	}
	return layers(inner)
}

func anyInstanceOf(errs []error, want reflect.Type) bool {
	for _, err := range errs {
		if reflect.TypeOf(err).AssignableTo(want) {
			return true
		}
	}
	return false
}
