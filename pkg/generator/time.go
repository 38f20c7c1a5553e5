package generator

import (
	"time"

	"digital.vasic.alchemy/internal/check"
)

// TimeMode places generated times relative to the moment they are
// drawn.
type TimeMode int

const (
	// Anytime produces past and future times with equal probability.
	Anytime TimeMode = iota
	// Past produces times before now.
	Past
	// Present produces the current time.
	Present
	// Future produces times after now.
	Future
)

func (m TimeMode) String() string {
	switch m {
	case Anytime:
		return "anytime"
	case Past:
		return "past"
	case Present:
		return "present"
	case Future:
		return "future"
	}
	return "unknown"
}

// maxTimeOffset bounds how far from now Past and Future reach.
const maxTimeOffset = 100 * 365 * 24 * time.Hour

// Times produces times placed by mode. Past and Future times lie
// between one second and about a century away from now.
func Times(mode TimeMode) Generator[time.Time] {
	offsets := Longs(int64(time.Second), int64(maxTimeOffset))
	pastOrFuture := Booleans()

	shift := func(sign int64) time.Time {
		return time.Now().Add(time.Duration(sign * offsets()))
	}

	switch mode {
	case Past:
		return func() time.Time { return shift(-1) }
	case Present:
		return time.Now
	case Future:
		return func() time.Time { return shift(1) }
	case Anytime:
		return func() time.Time {
			if pastOrFuture() {
				return shift(1)
			}
			return shift(-1)
		}
	}

	check.That(false, "unknown time mode %d", int(mode))
	return nil
}

// PastTimes produces times before now.
func PastTimes() Generator[time.Time] {
	return Times(Past)
}

// FutureTimes produces times after now.
func FutureTimes() Generator[time.Time] {
	return Times(Future)
}

// AnyTimes produces times before or after now.
func AnyTimes() Generator[time.Time] {
	return Times(Anytime)
}

// TimesBetween produces times in [start, end). start must be before
// end, and the two must lie within about 292 years of each other.
func TimesBetween(start, end time.Time) Generator[time.Time] {
	check.That(start.Before(end), "start %s must come before end %s", start, end)
	span := end.Sub(start)
	check.That(start.Add(span).Equal(end), "range from %s to %s is too wide", start, end)

	offsets := Longs(0, int64(span))
	return func() time.Time {
		return start.Add(time.Duration(offsets()))
	}
}
