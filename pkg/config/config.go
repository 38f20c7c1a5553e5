// Package config holds the runtime settings shared by the helpers:
// the generator seed, the default repeat count and verbosity. Settings
// come from defaults, an optional YAML file and ALCHEMY_* environment
// variables, in that order.
package config

import (
	"os"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"digital.vasic.alchemy/pkg/logging"
)

// Environment variable names read by ApplyEnv.
const (
	EnvSeed    = "ALCHEMY_SEED"
	EnvRepeat  = "ALCHEMY_REPEAT"
	EnvVerbose = "ALCHEMY_VERBOSE"
)

// Config holds helper settings.
type Config struct {
	// Seed seeds the data generators. Zero keeps the
	// generators randomly seeded.
	Seed uint64 `yaml:"seed"`

	// Repeat is how many times runner.Run executes a test
	// body. It must be positive.
	Repeat int `yaml:"repeat"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Repeat: 1,
	}
}

// Load reads a YAML file over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	c := NewConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// FromEnvironment returns the defaults with environment overrides
// applied.
func FromEnvironment() (*Config, error) {
	c := NewConfig()
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyEnv overrides settings from variables found through lookup,
// typically os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		c.Seed = seed
	}

	if v, ok := lookup(EnvRepeat); ok {
		repeat, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvRepeat)
		}
		c.Repeat = repeat
	}

	if v, ok := lookup(EnvVerbose); ok {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvVerbose)
		}
		c.Verbose = verbose
	}

	return c.Validate()
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Repeat <= 0 {
		return errors.Newf("repeat must be > 0, got %d", c.Repeat)
	}
	return nil
}

// Logger returns a logger for tb that writes through tb.Log, or a
// NullLogger when tb is nil.
func (c *Config) Logger(tb testing.TB) logging.Logger {
	if tb == nil {
		return logging.NullLogger{}
	}
	return logging.NewTestLogger(tb, c.Verbose)
}
