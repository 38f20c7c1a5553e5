// Package check holds the argument checks used across the module.
// A failed check is a programming error in the calling test, so it
// panics instead of returning an error.
package check

import (
	"github.com/cockroachdb/errors"

	"digital.vasic.alchemy/pkg/predicate"
)

// That panics with an assertion failure carrying message when
// condition is false.
func That(condition bool, message string, args ...any) {
	if !condition {
		panic(errors.AssertionFailedf(message, args...))
	}
}

// NotNil panics when ref is nil, including typed nils such as a nil
// func or pointer stored in an interface.
func NotNil(ref any, message string, args ...any) {
	That(!predicate.IsNil(ref), message, args...)
}
