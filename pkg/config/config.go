// Package config provides the configuration system for strata.
// A single Config structure covers the inference engine and logging;
// defaults mirror the fixed constants the engine was designed around.
package config

import (
	"github.com/ajitpratap0/strata/pkg/errors"
)

const (
	// DefaultBufferSize is the fixed capacity constant that bounds buffer
	// growth hints and the inference sample window.
	DefaultBufferSize = 1024

	// DefaultDelimiter is the token separating cells within a column view.
	DefaultDelimiter = ","

	// sampleDivisor fixes the sample window at one tenth of the buffer
	// capacity constant, independent of actual column length.
	sampleDivisor = 10
)

// OverflowPolicy controls what happens when a numeric token exceeds the
// widest supported representation for its category.
type OverflowPolicy string

const (
	// OverflowFatal fails inference for the column. This is the default.
	OverflowFatal OverflowPolicy = "fatal"
	// OverflowAny degrades the token to the text rank instead of failing.
	OverflowAny OverflowPolicy = "any"
)

// Config is the top-level configuration for the inference pipeline.
type Config struct {
	// Inference holds the type-inference engine settings
	Inference InferenceConfig `yaml:"inference" json:"inference"`

	// Logging holds structured logging settings
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// InferenceConfig holds the settings of the classification and
// materialization engine.
type InferenceConfig struct {
	// BufferSize is the capacity constant; the sample window is a fixed
	// tenth of it
	BufferSize int `yaml:"buffer_size" json:"buffer_size"`
	// Delimiter separates cells inside a raw column view
	Delimiter string `yaml:"delimiter" json:"delimiter"`
	// OverflowPolicy selects fatal or degrade-to-text overflow handling
	OverflowPolicy OverflowPolicy `yaml:"overflow_policy" json:"overflow_policy"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Encoding is json or console
	Encoding string `yaml:"encoding" json:"encoding"`
	// Development enables colored, stack-traced output
	Development bool `yaml:"development" json:"development"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Inference: InferenceConfig{
			BufferSize:     DefaultBufferSize,
			Delimiter:      DefaultDelimiter,
			OverflowPolicy: OverflowFatal,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// SampleWindow returns the number of tokens examined per column during
// inference.
func (c *InferenceConfig) SampleWindow() int {
	return c.BufferSize / sampleDivisor
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Inference.BufferSize < sampleDivisor {
		return errors.New(errors.ErrorTypeConfig, "buffer_size must allow a non-empty sample window").
			WithDetail("buffer_size", c.Inference.BufferSize).
			WithDetail("minimum", sampleDivisor)
	}
	if c.Inference.Delimiter == "" {
		return errors.New(errors.ErrorTypeConfig, "delimiter must not be empty")
	}
	switch c.Inference.OverflowPolicy {
	case OverflowFatal, OverflowAny:
	default:
		return errors.New(errors.ErrorTypeConfig, "unknown overflow policy").
			WithDetail("overflow_policy", string(c.Inference.OverflowPolicy))
	}
	return nil
}
