package runner

import (
	"testing"

	"digital.vasic.alchemy/pkg/config"
	"digital.vasic.alchemy/pkg/logging"
)

// Option configures Repeat and Run.
type Option func(*settings)

// Hook runs before every repetition of a test body.
type Hook func(t *testing.T)

type settings struct {
	config *config.Config
	logger logging.Logger
	before []Hook
}

func newSettings(opts []Option) *settings {
	s := &settings{config: config.NewConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settings) loggerFor(t *testing.T) logging.Logger {
	if s.logger != nil {
		return s.logger
	}
	if s.config.Verbose {
		return s.config.Logger(t)
	}
	return logging.NullLogger{}
}

// WithConfig sets the configuration that supplies the repeat count
// for Run and the logging verbosity.
func WithConfig(c *config.Config) Option {
	return func(s *settings) {
		if c != nil {
			s.config = c
		}
	}
}

// WithLogger sets the logger used to report repetitions.
func WithLogger(logger logging.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithBeforeEach adds a hook run at the start of every repetition,
// inside its subtest.
func WithBeforeEach(h Hook) Option {
	return func(s *settings) {
		s.before = append(s.before, h)
	}
}
