// Package runner repeats test bodies. Each repetition runs as its own
// subtest so failures point at the run that produced them.
package runner

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/require"

	"digital.vasic.alchemy/pkg/logging"
)

// Repeat runs fn n times, each as a subtest named after its ordinal
// ("1st", "2nd", ...). It fails t immediately when n is not positive
// and reports whether every run passed.
func Repeat(t *testing.T, n int, fn func(t *testing.T), opts ...Option) bool {
	t.Helper()
	require.NoError(t, validate(n, fn))

	s := newSettings(opts)
	logger := s.loggerFor(t).WithFields(
		logging.StringField("test", t.Name()),
	)

	start := time.Now()
	passed := 0
	for i := 1; i <= n; i++ {
		ok := t.Run(humanize.Ordinal(i), func(t *testing.T) {
			for _, h := range s.before {
				h(t)
			}
			fn(t)
		})
		if ok {
			passed++
		} else {
			logger.Warn("run failed",
				logging.StringField("run", humanize.Ordinal(i)),
			)
		}
	}

	logger.Info("repeat finished",
		logging.IntField("runs", n),
		logging.IntField("passed", passed),
		logging.DurationField("duration", time.Since(start)),
	)
	return passed == n
}

// Run is Repeat with the repeat count taken from the configuration
// set by WithConfig, one run by default.
func Run(t *testing.T, fn func(t *testing.T), opts ...Option) bool {
	t.Helper()
	return Repeat(t, newSettings(opts).config.Repeat, fn, opts...)
}

func validate(n int, fn func(t *testing.T)) error {
	if fn == nil {
		return errors.New("test body is nil")
	}
	if n <= 0 {
		return errors.Newf("times to repeat must be > 0, got %d", n)
	}
	return nil
}
