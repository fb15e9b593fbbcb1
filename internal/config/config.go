// Package config loads the bigcalc configuration file.
package config

import (
	"bytes"
	"os"

	"github.com/bobg/errors"
	"gopkg.in/yaml.v3"

	"github.com/db47h/bigint"
)

// Defaults.
const (
	DefaultBase     = 1000000000
	DefaultStrategy = "horner"
	DefaultCases    = 1000
	DefaultMaxLen   = 1000
	DefaultWorkers  = 1
)

// Config holds the settings shared by all bigcalc commands. Command line flags
// override values read from the file, which override the defaults.
type Config struct {
	// Base is the digit base of the computation flavor.
	Base uint64 `yaml:"base"`

	// Strategy is the radix conversion strategy: "horner" or "division".
	Strategy string `yaml:"strategy"`

	DiffTest DiffTest `yaml:"difftest"`
}

// DiffTest configures the differential test harness.
type DiffTest struct {
	// Cases is the number of random cases to run.
	Cases int `yaml:"cases"`

	// MaxLen is the maximum number of decimal characters of a random operand.
	MaxLen int `yaml:"max_len"`

	// Seed seeds the random generator. 0 picks a seed from the clock.
	Seed int64 `yaml:"seed"`

	// Workers is the number of concurrent workers.
	Workers int `yaml:"workers"`

	// Mul also checks multiplication by a random scalar.
	Mul bool `yaml:"mul"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Base:     DefaultBase,
		Strategy: DefaultStrategy,
		DiffTest: DiffTest{
			Cases:   DefaultCases,
			MaxLen:  DefaultMaxLen,
			Workers: DefaultWorkers,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return c, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if _, err := c.Flavor(); err != nil {
		return err
	}
	if _, err := c.ConvStrategy(); err != nil {
		return err
	}
	switch {
	case c.DiffTest.Cases < 0:
		return errors.New("difftest.cases must not be negative")
	case c.DiffTest.MaxLen < 1:
		return errors.New("difftest.max_len must be at least 1")
	case c.DiffTest.Workers < 1:
		return errors.New("difftest.workers must be at least 1")
	}
	return nil
}

// Flavor returns the computation flavor.
func (c *Config) Flavor() (bigint.Flavor, error) {
	return bigint.NewFlavor(c.Base)
}

// ConvStrategy returns the radix conversion strategy.
func (c *Config) ConvStrategy() (bigint.Strategy, error) {
	return bigint.ParseStrategy(c.Strategy)
}
