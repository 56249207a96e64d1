// Package config loads wordfreq settings from YAML files and environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings contains all wordfreq settings. Command-line flags override them.
type Settings struct {
	// MinLength is the inclusive minimum token length in runes. nil means
	// unconstrained.
	MinLength *int `json:"min_length,omitempty" yaml:"min_length,omitempty"`

	// StartsWith restricts tokens to those beginning with its first character.
	StartsWith string `json:"starts_with,omitempty" yaml:"starts_with,omitempty"`

	// Top is the number of most frequent words to list. 0 disables the list.
	Top int `json:"top,omitempty" yaml:"top,omitempty"`

	// JSON renders the report as JSON.
	JSON bool `json:"json,omitempty" yaml:"json,omitempty"`

	Logging LoggingSettings `json:"logging" yaml:"logging"`
}

// LoggingSettings configures operational logging.
type LoggingSettings struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns Settings with every constraint disabled.
func Default() *Settings {
	return &Settings{
		Logging: LoggingSettings{Level: "info"},
	}
}

// LoadFromFile loads settings from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return s, nil
}

// ApplyEnv overrides settings from environment variables.
//   - WORDFREQ_LOG_LEVEL: logging level
//   - WORDFREQ_TOP: number of top words to list
func (s *Settings) ApplyEnv() error {
	if v := os.Getenv("WORDFREQ_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv("WORDFREQ_TOP"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid WORDFREQ_TOP %q: %w", v, err)
		}
		s.Top = n
	}
	return s.Validate()
}

// Validate checks that settings are in range.
func (s *Settings) Validate() error {
	var errs []error
	if s.MinLength != nil && *s.MinLength < 0 {
		errs = append(errs, fmt.Errorf("min_length must be non-negative, got %d", *s.MinLength))
	}
	if s.Top < 0 {
		errs = append(errs, fmt.Errorf("top must be non-negative, got %d", s.Top))
	}
	return errors.Join(errs...)
}
