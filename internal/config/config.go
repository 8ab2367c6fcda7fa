// SPDX-License-Identifier: MIT

// Package config loads matcheck settings from a TOML file.
//
// Missing keys fall back to documented defaults (applyDefaults); a zero value in
// the file means "use the default". Command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
)

// Supported strategy names for Check.Calc.
const (
	CalcFloat64 = "float64"
	CalcBigRat  = "bigrat"
	CalcInt64   = "int64"
	CalcBigInt  = "bigint"
)

// Calcs lists every accepted Check.Calc value.
var Calcs = []string{CalcFloat64, CalcBigRat, CalcInt64, CalcBigInt}

// Defaults applied by applyDefaults.
const (
	DefaultOrder    = 4
	DefaultTrials   = 20
	DefaultSeed     = 1
	DefaultCalc     = CalcBigRat
	DefaultLow      = -9
	DefaultHigh     = 9
	DefaultEpsilon  = 1e-9
	DefaultMaxTries = 100
	DefaultTimeout  = 30 * time.Second

	// MaxPermutationOrder bounds --order for the O(n!) permutation determinant.
	MaxPermutationOrder = 9
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the complete matcheck configuration.
type Config struct {
	Check CheckConfig `toml:"check"`
}

// CheckConfig holds the random-trial settings shared by every subcommand.
type CheckConfig struct {
	Order    int      `toml:"order"`
	Trials   int      `toml:"trials"`
	Seed     int64    `toml:"seed"`
	Calc     string   `toml:"calc"`
	Low      int      `toml:"low"`
	High     int      `toml:"high"`
	Epsilon  float64  `toml:"epsilon"`
	MaxTries int      `toml:"max_tries"`
	Timeout  Duration `toml:"timeout"`
}

// Duration is a time.Duration written in TOML as a string such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText accepts any string time.ParseDuration understands.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("timeout %q: %w", text, ErrInvalidConfig)
	}
	d.Duration = v

	return nil
}

// MarshalText renders the duration in time.Duration.String form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()

	return &cfg
}

// Load reads the TOML file at path, expanding environment variables in the
// path, and validates the result.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q: %w", undecoded[0].String(), ErrInvalidConfig)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills every zero-valued setting with its default.
func (c *Config) applyDefaults() {
	if c.Check.Order == 0 {
		c.Check.Order = DefaultOrder
	}
	if c.Check.Trials == 0 {
		c.Check.Trials = DefaultTrials
	}
	if c.Check.Seed == 0 {
		c.Check.Seed = DefaultSeed
	}
	if c.Check.Calc == "" {
		c.Check.Calc = DefaultCalc
	}
	if c.Check.Low == 0 && c.Check.High == 0 {
		c.Check.Low, c.Check.High = DefaultLow, DefaultHigh
	}
	if c.Check.Epsilon == 0 {
		c.Check.Epsilon = DefaultEpsilon
	}
	if c.Check.MaxTries == 0 {
		c.Check.MaxTries = DefaultMaxTries
	}
	if c.Check.Timeout.Duration == 0 {
		c.Check.Timeout.Duration = DefaultTimeout
	}
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	ck := c.Check
	switch {
	case ck.Order < 1:
		return fmt.Errorf("order %d < 1: %w", ck.Order, ErrInvalidConfig)
	case ck.Trials < 1:
		return fmt.Errorf("trials %d < 1: %w", ck.Trials, ErrInvalidConfig)
	case !slices.Contains(Calcs, ck.Calc):
		return fmt.Errorf("calc %q (want one of %v): %w", ck.Calc, Calcs, ErrInvalidConfig)
	case ck.Low > ck.High:
		return fmt.Errorf("low %d > high %d: %w", ck.Low, ck.High, ErrInvalidConfig)
	case ck.Epsilon < 0:
		return fmt.Errorf("epsilon %g < 0: %w", ck.Epsilon, ErrInvalidConfig)
	case ck.MaxTries < 1:
		return fmt.Errorf("max_tries %d < 1: %w", ck.MaxTries, ErrInvalidConfig)
	case ck.Timeout.Duration < 0:
		return fmt.Errorf("timeout %s < 0: %w", ck.Timeout.Duration, ErrInvalidConfig)
	}

	return nil
}
