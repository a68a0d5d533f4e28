// Package config loads CLI configuration from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Defaults.
const (
	DefaultFormat    = FormatTable
	DefaultColor     = true
	DefaultPrecision = 6
	DefaultSeries    = ""
)

// Precision bounds for printed values.
const (
	minPrecision = 0
	maxPrecision = 17
)

// ErrBadFormat is returned for an unknown output format.
var ErrBadFormat = errors.New("unknown output format")

// ErrBadPrecision is returned for a precision outside the printable range.
var ErrBadPrecision = errors.New("precision out of range")

// Config is the top-level configuration struct for the rangecurve CLI.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Series SeriesConfig `mapstructure:"series"`
}

// OutputConfig holds result formatting knobs.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Color     bool   `mapstructure:"color"`
	Precision int    `mapstructure:"precision"`
}

// SeriesConfig holds series selection defaults.
type SeriesConfig struct {
	Default string `mapstructure:"default"`
}

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if !slices.Contains([]string{FormatTable, FormatPlain}, c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrBadFormat, c.Output.Format)
	}

	if c.Output.Precision < minPrecision || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: %d", ErrBadPrecision, c.Output.Precision)
	}

	return nil
}
