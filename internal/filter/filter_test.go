package filter

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, opts ...Option) Config {
	t.Helper()
	cfg, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cfg
}

func TestAccept(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		token string
		want  bool
	}{
		{"unconstrained", nil, "anything", true},
		{"min length below", []Option{WithMinLength(4)}, "cat", false},
		{"min length inclusive", []Option{WithMinLength(4)}, "bear", true},
		{"min length above", []Option{WithMinLength(4)}, "elephant", true},
		{"min length zero", []Option{WithMinLength(0)}, "a", true},
		{"min length counts runes", []Option{WithMinLength(4)}, "café", true},
		{"min length counts runes not bytes", []Option{WithMinLength(4)}, "日本", false},
		{"prefix match", []Option{WithStartPrefix('a')}, "apple", true},
		{"prefix mismatch", []Option{WithStartPrefix('a')}, "banana", false},
		{"prefix folded", []Option{WithStartPrefix('A')}, "apple", true},
		{"prefix non-latin", []Option{WithStartPrefix('Ж')}, "жук", true},
		{"prefix punctuation never matches", []Option{WithStartPrefix('#')}, "tag", false},
		{"both satisfied", []Option{WithMinLength(3), WithStartPrefix('a')}, "ant", true},
		{"both, length fails", []Option{WithMinLength(4), WithStartPrefix('a')}, "ant", false},
		{"both, prefix fails", []Option{WithMinLength(3), WithStartPrefix('a')}, "bee", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustNew(t, tt.opts...)
			if got := Accept(cfg, tt.token); got != tt.want {
				t.Errorf("Accept(%s, %q) = %v, want %v", cfg, tt.token, got, tt.want)
			}
		})
	}
}

func TestNew_NegativeMinLength(t *testing.T) {
	_, err := New(WithMinLength(-1))
	if !errors.Is(err, ErrInvalidMinLength) {
		t.Errorf("expected ErrInvalidMinLength, got %v", err)
	}
}

func TestConfig_ZeroValueUnconstrained(t *testing.T) {
	var cfg Config
	if _, ok := cfg.MinLength(); ok {
		t.Error("zero Config should have no min length")
	}
	if _, ok := cfg.StartPrefix(); ok {
		t.Error("zero Config should have no start prefix")
	}
	if cfg.String() != "unconstrained" {
		t.Errorf("String: got %q, want unconstrained", cfg.String())
	}
}

func TestConfig_String(t *testing.T) {
	cfg := mustNew(t, WithMinLength(2), WithStartPrefix('Q'))
	if got, want := cfg.String(), `min_length=2 start_prefix="q"`; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
