// Package tolerance compares floating-point numbers within an
// absolute margin.
//
// NaN equals only NaN, and an infinity equals only the infinity of
// the same sign, whatever the margin. A negative or NaN margin never
// matches, not even for two identical values.
package tolerance

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// ValidMargin reports whether margin can be used for a comparison.
func ValidMargin(margin float64) bool {
	return margin >= 0 && !math.IsNaN(margin)
}

// Within reports whether |actual-expected| <= margin. The bound is
// inclusive.
func Within(actual, expected, margin float64) bool {
	if !ValidMargin(margin) {
		return false
	}

	switch {
	case math.IsNaN(actual) || math.IsNaN(expected):
		return math.IsNaN(actual) && math.IsNaN(expected)
	case math.IsInf(actual, 0) || math.IsInf(expected, 0):
		return actual == expected
	}

	return math.Abs(actual-expected) <= margin
}

// AssertDoubleEquals asserts that actual equals expected within an
// optional margin, which defaults to 0 (exact equality). Only the
// first margin is used. On failure it reports through t and returns
// false.
func AssertDoubleEquals(
	t assert.TestingT,
	actual, expected float64,
	margin ...float64,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	m := 0.0
	if len(margin) > 0 {
		m = margin[0]
	}
	return AssertWithin(t, actual, expected, m)
}

// AssertWithin is AssertDoubleEquals with an explicit margin and
// optional testify message arguments.
func AssertWithin(
	t assert.TestingT,
	actual, expected, margin float64,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !ValidMargin(margin) {
		return assert.Fail(t, fmt.Sprintf(
			"margin must be a non-negative number, got %v", margin,
		), msgAndArgs...)
	}

	if Within(actual, expected, margin) {
		return true
	}

	return assert.Fail(t, fmt.Sprintf(
		"expected: %v\nactual  : %v\nmargin  : %v (difference %v)",
		expected, actual, margin, math.Abs(actual-expected),
	), msgAndArgs...)
}
