// Package dates produces points in time relative to now and compares
// times within a margin.
package dates

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
)

// Now returns the current time.
func Now() time.Time {
	return time.Now()
}

// DaysAgo returns the time the given number of days before now.
func DaysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

// DaysAhead returns the time the given number of days after now.
func DaysAhead(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

// HoursAgo returns the time the given number of hours before now.
func HoursAgo(hours int) time.Time {
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}

// HoursAhead returns the time the given number of hours after now.
func HoursAhead(hours int) time.Time {
	return time.Now().Add(time.Duration(hours) * time.Hour)
}

// MinutesAgo returns the time the given number of minutes before
// now.
func MinutesAgo(minutes int) time.Time {
	return time.Now().Add(-time.Duration(minutes) * time.Minute)
}

// MinutesAhead returns the time the given number of minutes after
// now.
func MinutesAhead(minutes int) time.Time {
	return time.Now().Add(time.Duration(minutes) * time.Minute)
}

// Near reports whether actual is within margin of expected, either
// side. The bound is inclusive.
func Near(actual, expected time.Time, margin time.Duration) bool {
	if margin < 0 {
		return false
	}
	diff := actual.Sub(expected)
	return diff >= -margin && diff <= margin
}

type tHelper interface {
	Helper()
}

// AssertTimeNear asserts that actual is within margin of expected.
// The failure message describes how far apart the times are.
func AssertTimeNear(
	t assert.TestingT,
	actual, expected time.Time,
	margin time.Duration,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if margin < 0 {
		return assert.Fail(t, fmt.Sprintf(
			"margin must not be negative, got %s", margin,
		), msgAndArgs...)
	}
	if Near(actual, expected, margin) {
		return true
	}

	return assert.Fail(t, fmt.Sprintf(
		"expected: %s\nactual  : %s (%s)\nmargin  : %s",
		expected.Format(time.RFC3339Nano),
		actual.Format(time.RFC3339Nano),
		humanize.RelTime(actual, expected, "before expected", "after expected"),
		margin,
	), msgAndArgs...)
}
