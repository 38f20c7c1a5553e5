// Package predicate provides total boolean predicates for expressing
// test conditions over nullable values, collections, strings and
// booleans. Compound predicates are composed from a small set of
// primitives so that nil handling stays consistent across all of them.
package predicate

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Predicate is a pure, total function reporting whether value
// satisfies a condition. A Predicate never panics, including on nil
// input.
type Predicate[T any] func(value T) bool

// IsNil reports whether value is absent: untyped nil, or a nil
// pointer, slice, map, channel, func or interface.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// IsEmpty reports whether value is a collection with no elements.
// Absent values are empty, matching len on a nil slice or map.
// Present values that are not collections are never empty.
func IsEmpty(value any) bool {
	if IsNil(value) {
		return true
	}
	n, ok := Size(value)
	return ok && n == 0
}

// Size returns the number of elements in a slice, array, map,
// channel or string, dereferencing a single pointer level. The second
// result is false when value is not a collection.
func Size(value any) (int, bool) {
	if value == nil {
		return 0, false
	}
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map,
		reflect.Slice, reflect.String:
		return v.Len(), true
	}
	return 0, false
}

// Equal returns a Predicate matching values structurally equal to
// expected. Comparison panics inside go-cmp, such as unexported
// fields, are reported as a mismatch.
func Equal[T any](expected T, opts ...cmp.Option) Predicate[T] {
	return func(value T) (equal bool) {
		defer func() {
			if recover() != nil {
				equal = false
			}
		}()
		return cmp.Equal(expected, value, opts...)
	}
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return !p(value)
	}
}

// And holds when every predicate holds. It stops at the first
// predicate that fails. And with no predicates always holds.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return func(value T) bool {
		for _, p := range ps {
			if !p(value) {
				return false
			}
		}
		return true
	}
}

// Or holds when any predicate holds. It stops at the first predicate
// that passes. Or with no predicates never holds.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return func(value T) bool {
		for _, p := range ps {
			if p(value) {
				return true
			}
		}
		return false
	}
}

// Ptr returns a pointer to v. It is handy for building *string and
// *bool inputs.
func Ptr[T any](v T) *T {
	return &v
}
