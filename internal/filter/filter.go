package filter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"harshagw/wordfreq/internal/analysis"
)

var ErrInvalidMinLength = errors.New("min length must be a non-negative integer")

// Config holds the token constraints for a run. The zero value accepts
// every token. Build it with New; it is never modified afterwards.
type Config struct {
	minLength    int
	hasMinLength bool
	startPrefix  string
}

type Option func(*Config)

// WithMinLength requires tokens to have at least n runes.
func WithMinLength(n int) Option {
	return func(c *Config) {
		c.minLength = n
		c.hasMinLength = true
	}
}

// WithStartPrefix requires tokens to begin with r, case-folded.
func WithStartPrefix(r rune) Option {
	return func(c *Config) {
		c.startPrefix = analysis.Fold(string(r))
	}
}

// New builds a Config from opts.
func New(opts ...Option) (Config, error) {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.hasMinLength && c.minLength < 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidMinLength, c.minLength)
	}
	return c, nil
}

// MinLength returns the inclusive minimum rune count, if constrained.
func (c Config) MinLength() (int, bool) {
	return c.minLength, c.hasMinLength
}

// StartPrefix returns the folded leading character, if constrained.
func (c Config) StartPrefix() (string, bool) {
	return c.startPrefix, c.startPrefix != ""
}

func (c Config) String() string {
	var parts []string
	if n, ok := c.MinLength(); ok {
		parts = append(parts, fmt.Sprintf("min_length=%d", n))
	}
	if p, ok := c.StartPrefix(); ok {
		parts = append(parts, fmt.Sprintf("start_prefix=%q", p))
	}
	if len(parts) == 0 {
		return "unconstrained"
	}
	return strings.Join(parts, " ")
}

// Accept reports whether token satisfies every constraint in cfg.
func Accept(cfg Config, token string) bool {
	if n, ok := cfg.MinLength(); ok && utf8.RuneCountInString(token) < n {
		return false
	}
	if p, ok := cfg.StartPrefix(); ok && !strings.HasPrefix(token, p) {
		return false
	}
	return true
}
