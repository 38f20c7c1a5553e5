package assertion

import (
	"fmt"
	"strconv"
	"strings"

	"digital.vasic.alchemy/pkg/predicate"
	"digital.vasic.alchemy/pkg/tolerance"
)

// builtins returns the evaluators registered by NewEngine.
func builtins() map[string]Evaluator {
	return map[string]Evaluator{
		"is_nil": FromPredicate(
			predicate.Absent, "value is nil", "value is not nil",
		),
		"not_nil": FromPredicate(
			predicate.Present, "value is not nil", "value is nil",
		),
		"empty": FromPredicate(
			predicate.Empty, "value is empty", "value is not empty",
		),
		"not_empty": FromPredicate(
			predicate.NotEmpty,
			"value is not empty", "value is nil or empty",
		),
		"nil_or_empty": FromPredicate(
			predicate.AbsentOrEmpty,
			"value is nil or empty", "value has elements",
		),
		"present_and_not_empty": FromPredicate(
			predicate.PresentAndNotEmpty,
			"value is present and not empty", "value is nil or empty",
		),
		"empty_string": stringEvaluator(
			predicate.EmptyString,
			"string is empty", "string is nil or not empty",
		),
		"nil_or_empty_string": stringEvaluator(
			predicate.AbsentOrEmptyString,
			"string is nil or empty", "string is not empty",
		),
		"non_empty_string": stringEvaluator(
			predicate.NonEmptyString,
			"string is not empty", "string is nil or empty",
		),
		"present_non_empty_string": stringEvaluator(
			predicate.PresentNonEmptyString,
			"string is present and not empty", "string is nil or empty",
		),
		"is_true": boolEvaluator(
			predicate.True, "value is true", "value is not true",
		),
		"is_false": boolEvaluator(
			predicate.False, "value is false", "value is not false",
		),
		"has_size": evaluateHasSize,
		"equals":   evaluateEquals,
		"within":   evaluateWithin,
	}
}

// stringEvaluator adapts a *string predicate. A string value is
// checked through a pointer to it and nil stays absent.
func stringEvaluator(
	p predicate.Predicate[*string],
	pass, fail string,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		var s *string
		switch v := value.(type) {
		case nil:
		case string:
			s = &v
		case *string:
			s = v
		default:
			return false, fmt.Sprintf("value is not a string: %T", value)
		}

		if p(s) {
			return true, pass
		}
		return false, fail
	}
}

// boolEvaluator adapts a *bool predicate the same way
// stringEvaluator does for strings.
func boolEvaluator(
	p predicate.Predicate[*bool],
	pass, fail string,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		var b *bool
		switch v := value.(type) {
		case nil:
		case bool:
			b = &v
		case *bool:
			b = v
		default:
			return false, fmt.Sprintf("value is not a bool: %T", value)
		}

		if p(b) {
			return true, pass
		}
		return false, fail
	}
}

// evaluateHasSize checks that a present collection has exactly
// the expected number of elements.
func evaluateHasSize(
	assertion Definition,
	value any,
) (bool, string) {
	expected, ok := toInt(assertion.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	if predicate.HasSize(expected)(value) {
		return true, fmt.Sprintf("size is %d", expected)
	}

	if size, ok := predicate.Size(value); ok && !predicate.IsNil(value) {
		return false, fmt.Sprintf("size %d != %d", size, expected)
	}
	return false, fmt.Sprintf(
		"value is nil or not a collection, expected size %d",
		expected,
	)
}

// evaluateEquals checks structural equality with the expected
// value.
func evaluateEquals(
	assertion Definition,
	value any,
) (bool, string) {
	if predicate.Equal(assertion.Value)(value) {
		return true, fmt.Sprintf("equals %v", assertion.Value)
	}
	return false, fmt.Sprintf(
		"%v does not equal %v", value, assertion.Value,
	)
}

// evaluateWithin checks that a number is within Margin of the
// expected value.
func evaluateWithin(
	assertion Definition,
	value any,
) (bool, string) {
	actual, ok := toFloat64(value)
	if !ok {
		return false, "value is not a number"
	}

	expected, ok := toFloat64(assertion.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	if !tolerance.ValidMargin(assertion.Margin) {
		return false, fmt.Sprintf(
			"margin must be a non-negative number, got %v",
			assertion.Margin,
		)
	}

	if tolerance.Within(actual, expected, assertion.Margin) {
		return true, fmt.Sprintf(
			"%v is within %v of %v",
			actual, assertion.Margin, expected,
		)
	}

	return false, fmt.Sprintf(
		"%v is not within %v of %v",
		actual, assertion.Margin, expected,
	)
}

// --- helpers ---

// toInt converts an any value to int. Strings are parsed so that
// compact "has_size:3" definitions work.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

// toFloat64 converts an any value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
