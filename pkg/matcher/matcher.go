// Package matcher plugs predicates into external assertion
// frameworks: gomega matchers and testify-style assertions.
package matcher

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.alchemy/pkg/predicate"
)

type tHelper interface {
	Helper()
}

// Gomega adapts p into a gomega matcher. description completes the
// sentence "Expected <actual> to ...", for example "be absent". An
// actual value that is not a T is reported as a matcher error rather
// than a mismatch.
func Gomega[T any](description string, p predicate.Predicate[T]) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(actual any) (bool, error) {
		value, ok := convert[T](actual)
		if !ok {
			return false, fmt.Errorf(
				"matcher %q expects a %s, got %T",
				description, reflect.TypeFor[T](), actual,
			)
		}
		return p(value), nil
	}).WithMessage(description)
}

// convert turns a gomega actual value into T. A nil actual becomes
// the zero T only when T can hold nil.
func convert[T any](actual any) (T, bool) {
	var zero T
	if actual == nil {
		return zero, nillable(reflect.TypeFor[T]())
	}
	value, ok := actual.(T)
	return value, ok
}

func nillable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}

// Assert reports a failure through t when value does not satisfy p.
// It returns whether p held.
func Assert[T any](
	t assert.TestingT,
	value T,
	description string,
	p predicate.Predicate[T],
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if p(value) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf(
		"expected %s to %s", describe(value), description,
	), msgAndArgs...)
}

// Require is Assert followed by t.FailNow on failure.
func Require[T any](
	t require.TestingT,
	value T,
	description string,
	p predicate.Predicate[T],
	msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !Assert(t, value, description, p, msgAndArgs...) {
		t.FailNow()
	}
}

func describe(value any) string {
	if predicate.IsNil(value) {
		return "<nil>"
	}
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		return fmt.Sprintf("&%#v", v.Elem().Interface())
	}
	return fmt.Sprintf("%#v", value)
}
