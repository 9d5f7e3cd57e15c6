package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/boundcheck/internal/app"
	"github.com/bft-labs/boundcheck/internal/domain"
	"github.com/bft-labs/boundcheck/internal/report"
)

const (
	// DefaultSteps is the probe step count, and the divisor of the probe delta.
	DefaultSteps = 5

	// MaxSteps is the largest accepted probe step count.
	MaxSteps = 1_000_000
)

// Config holds CLI configuration for boundcheck.
type Config struct {
	Steps      uint64
	Domains    []string
	Operations []string

	Parallelism int

	Format   string
	Color    string
	LogLevel string
	Watch    bool
}

// DefaultConfig returns a Config with default values. Empty Domains and
// Operations select everything.
func DefaultConfig() Config {
	return Config{
		Steps:       DefaultSteps,
		Parallelism: runtime.NumCPU(),
		Format:      string(report.FormatTable),
		Color:       string(report.ColorAuto),
		LogLevel:    zerolog.InfoLevel.String(),
	}
}

// Validate checks the configuration for errors and normalizes names.
func (c *Config) Validate() error {
	if c.Steps == 0 {
		return fmt.Errorf("%w: steps must be positive", domain.ErrInvalidConfig)
	}
	if c.Steps > MaxSteps {
		return fmt.Errorf("%w: steps %d exceed %d", domain.ErrInvalidConfig, c.Steps, MaxSteps)
	}

	if _, err := domain.Resolve(c.Domains); err != nil {
		return err
	}
	for i, name := range c.Operations {
		op, err := domain.ParseOperation(name)
		if err != nil {
			return err
		}
		c.Operations[i] = string(op)
	}

	if c.Parallelism <= 0 {
		c.Parallelism = runtime.NumCPU()
	}

	if c.Format == "" {
		c.Format = string(report.FormatTable)
	}
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = string(format)

	color, err := report.ParseColorMode(c.Color)
	if err != nil {
		return err
	}
	c.Color = string(color)

	if c.LogLevel == "" {
		c.LogLevel = zerolog.InfoLevel.String()
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidConfig, c.LogLevel)
	}
	c.LogLevel = level.String()

	return nil
}

// Plan builds the probe plan described by a validated config.
func (c Config) Plan() (app.Plan, error) {
	ds, err := domain.Resolve(c.Domains)
	if err != nil {
		return app.Plan{}, err
	}
	ops := domain.Operations()
	if len(c.Operations) > 0 {
		ops = ops[:0]
		seen := map[domain.Operation]bool{}
		for _, name := range c.Operations {
			op, err := domain.ParseOperation(name)
			if err != nil {
				return app.Plan{}, err
			}
			if !seen[op] {
				seen[op] = true
				ops = append(ops, op)
			}
		}
	}
	return app.Plan{
		Domains:     ds,
		Operations:  ops,
		Steps:       c.Steps,
		Parallelism: c.Parallelism,
	}, nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setUint64 sets a uint64 value if positive and flag not changed.
func (s *configSetter) setUint64(flag string, value uint64, dst *uint64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setStringsFromString splits a comma-separated list, dropping blanks.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	s.setStrings(flag, list, dst)
}

// setUint64FromString parses a string to uint64 and sets the destination if valid.
func (s *configSetter) setUint64FromString(flag, value string, dst *uint64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setUint64(flag, u, dst)
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, i, dst)
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
