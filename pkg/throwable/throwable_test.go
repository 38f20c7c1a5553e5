package throwable

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.alchemy/internal/testingt"
)

type customError struct {
	code int
}

func (e *customError) Error() string {
	return fmt.Sprintf("custom error %d", e.code)
}

type coder interface {
	error
	Code() int
}

func (e *customError) Code() int { return e.code }

func TestCapture_ReturnedError(t *testing.T) {
	want := &customError{code: 7}

	a, err := Capture(func() error { return want })

	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Same(t, want, a.Err())
}

func TestCapture_PanicWithError(t *testing.T) {
	want := fmt.Errorf("boom")

	a, err := Capture(func() error { panic(want) })

	require.NoError(t, err)
	assert.Same(t, want, a.Err())
}

func TestCapture_RuntimePanic(t *testing.T) {
	a, err := Capture(func() error {
		var m map[string]int
		m["x"] = 1
		return nil
	})

	require.NoError(t, err)
	var rtErr runtime.Error
	assert.ErrorAs(t, a.Err(), &rtErr)
}

func TestCapture_PanicWithValue(t *testing.T) {
	a, err := Capture(func() error { panic("not an error") })

	require.NoError(t, err)
	var pe *PanicError
	require.ErrorAs(t, a.Err(), &pe)
	assert.Equal(t, "not an error", pe.Value)
	assert.NotEmpty(t, pe.Stack)
	assert.Equal(t, "panic: not an error", pe.Error())
}

func TestCapture_NothingRaised(t *testing.T) {
	a, err := Capture(func() error { return nil })

	assert.Nil(t, a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExceptionNotThrown))

	var notThrown *ExceptionNotThrownError
	assert.True(t, errors.As(err, &notThrown))
	assert.Contains(t, err.Error(), "expected an exception")

	_, direct := err.(*ExceptionNotThrownError)
	assert.True(t, direct, "got %T", err)
	assert.Same(t, ErrExceptionNotThrown, err)
}

func TestCapture_NilOperation(t *testing.T) {
	a, err := Capture(nil)

	assert.Nil(t, a)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrExceptionNotThrown))
}

func TestCapture_DoesNotCatchOtherGoroutines(t *testing.T) {
	done := make(chan struct{})

	_, err := Capture(func() error {
		go func() {
			defer close(done)
			defer func() { _ = recover() }()
			panic("elsewhere")
		}()
		<-done
		return nil
	})

	assert.ErrorIs(t, err, ErrExceptionNotThrown)
}

func TestAssertThrows_RuntimeError(t *testing.T) {
	a := AssertThrows(t, func() error {
		return &customError{code: 1}
	})

	require.NotNil(t, a)
	a.IsInstanceOf(new(*customError)).
		IsInstanceOf(new(error)).
		IsInstanceOf(new(coder)).
		HasMessage("custom error 1").
		ContainsInMessage("error 1").
		HasNoCause()
}

func TestAssertThrows_NothingRaised(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()
	rec.ExpectFailNow()

	a := AssertThrows(rec, func() error { return nil })

	assert.Nil(t, a)
	rec.AssertExpectations(t)
	assert.Contains(t, rec.Joined(), "expected operation to raise an error")
}

func TestAssertPanics(t *testing.T) {
	AssertPanics(t, func() {
		panic(&customError{code: 3})
	}).IsInstanceOf(new(*customError)).HasMessage("custom error 3")
}

func TestAssertPanics_NilFunc(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()
	rec.ExpectFailNow()

	assert.Nil(t, AssertPanics(rec, nil))
	rec.AssertExpectations(t)
	assert.Contains(t, rec.Joined(), "missing operation")
}

func TestIsInstanceOf_Mismatch(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	a, err := Capture(func() error { return fmt.Errorf("plain") })
	require.NoError(t, err)

	a.With(rec).IsInstanceOf(new(*customError))

	rec.AssertExpectations(t)
	assert.Contains(t, rec.Joined(), "expected error of type *throwable.customError")
	assert.Contains(t, rec.Joined(), "*errors.errorString")
}

func TestIsInstanceOf_ChecksOnlyTheCapturedError(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	wrapped := fmt.Errorf("outer: %w", &customError{code: 2})
	a, err := Capture(func() error { return wrapped })
	require.NoError(t, err)

	a.With(rec).IsInstanceOf(new(*customError))

	rec.AssertExpectations(t)
}

func TestIsInstanceOf_InvalidTarget(t *testing.T) {
	a := AssertThrows(t, func() error { return os.ErrNotExist })

	assert.Panics(t, func() { a.IsInstanceOf(nil) })
	assert.Panics(t, func() { a.IsInstanceOf(customError{}) })
	assert.Panics(t, func() { a.IsInstanceOf(new(int)) })
}

func TestUnboundAssertionPanics(t *testing.T) {
	a, err := Capture(func() error { return os.ErrNotExist })
	require.NoError(t, err)

	assert.Panics(t, func() { a.HasMessage("x") })
}

func TestHasMessage_Mismatch(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	AssertThrows(rec, func() error { return fmt.Errorf("actual") }).
		HasMessage("expected")

	rec.AssertExpectations(t)
}

func TestContainsInMessage_Mismatch(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	AssertThrows(rec, func() error { return fmt.Errorf("actual") }).
		ContainsInMessage("missing")

	rec.AssertExpectations(t)
}

func TestCause(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}

	AssertThrows(t, func() error {
		return fmt.Errorf("load config: %w", cause)
	}).
		HasCauseInstanceOf(new(*fs.PathError)).
		Is(fs.ErrNotExist)
}

func TestHasNoCause_Mismatch(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	AssertThrows(rec, func() error {
		return fmt.Errorf("outer: %w", os.ErrClosed)
	}).HasNoCause()

	rec.AssertExpectations(t)
	assert.Contains(t, rec.Joined(), "expected no cause")
}

func TestHasCauseInstanceOf_NoCause(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	AssertThrows(rec, func() error { return &customError{} }).
		HasCauseInstanceOf(new(*customError))

	rec.AssertExpectations(t)
	assert.Contains(t, rec.Joined(), "there was none")
}

func TestHasCauseInstanceOf_WrongType(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	AssertThrows(rec, func() error {
		return fmt.Errorf("outer: %w", os.ErrClosed)
	}).HasCauseInstanceOf(new(*customError))

	rec.AssertExpectations(t)
}

func TestAs(t *testing.T) {
	a := AssertThrows(t, func() error {
		return fmt.Errorf("outer: %w", &customError{code: 9})
	})

	ce, ok := As[*customError](a)
	require.True(t, ok)
	assert.Equal(t, 9, ce.code)

	_, ok = As[*fs.PathError](a)
	assert.False(t, ok)
}

func TestCause_StackOnlyWrappers(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"new", errors.New("boom")},
		{"newf", errors.Newf("boom %d", 1)},
		{"with stack", errors.WithStack(&customError{code: 4})},
		{"with stack over new", errors.WithStack(errors.New("boom"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testingt.New(t)

			AssertThrows(rec, func() error { return tt.err }).HasNoCause()

			assert.Empty(t, rec.Calls, rec.Joined())
		})
	}
}

func TestCause_WrappedWithContext(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"wrap", errors.Wrap(&customError{code: 1}, "ctx")},
		{"wrapf", errors.Wrapf(&customError{code: 1}, "ctx %s", "load")},
		{"wrap over stack", errors.Wrap(errors.WithStack(&customError{code: 1}), "ctx")},
		{"fmt over stack", fmt.Errorf("ctx: %w", errors.WithStack(&customError{code: 1}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testingt.New(t)

			AssertThrows(rec, func() error { return tt.err }).
				HasCauseInstanceOf(new(*customError)).
				HasCauseInstanceOf(new(coder))

			assert.Empty(t, rec.Calls, rec.Joined())
		})
	}
}

func TestCause_WrappedLibraryError(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	AssertThrows(rec, func() error {
		return errors.Wrap(errors.New("root"), "ctx")
	}).HasNoCause()

	rec.AssertExpectations(t)
	assert.Contains(t, rec.Joined(), "expected no cause")
	assert.Contains(t, rec.Joined(), "root")
}

func TestIsInstanceOf_SeesThroughStack(t *testing.T) {
	rec := testingt.New(t)

	AssertThrows(rec, func() error {
		return errors.WithStack(&customError{code: 5})
	}).IsInstanceOf(new(*customError)).HasNoCause()

	assert.Empty(t, rec.Calls, rec.Joined())
}

func TestIsInstanceOf_WrapIsNotTheCause(t *testing.T) {
	rec := testingt.New(t)
	rec.ExpectErrorf()

	AssertThrows(rec, func() error {
		return errors.Wrap(&customError{code: 6}, "ctx")
	}).IsInstanceOf(new(*customError))

	rec.AssertExpectations(t)
}
