package analysis

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Hello", "hello"},
		{"all caps", "THE", "the"},
		{"trailing punctuation", "fox.", "fox"},
		{"inner punctuation removed", "don't", "dont"},
		{"hyphen removed", "state-of-the-art", "stateoftheart"},
		{"digits kept", "Base64", "base64"},
		{"punctuation only", "--!?", ""},
		{"empty", "", ""},
		{"accented", "Café", "café"},
		{"sharp s", "STRAßE", "straße"},
		{"greek final sigma", "ΣΑΣ", "σας"},
		{"dotted capital i expands", "İ", "i̇"},
		{"non-latin digits", "١٢٣", "١٢٣"},
	}

	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer()
	for _, input := range []string{"Hello,", "WORLD!", "café", "Straße", "ΣΑΣ", "x86_64", "Ünïcödé"} {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestFold(t *testing.T) {
	if got := Fold("A"); got != "a" {
		t.Errorf("Fold(A) = %q, want a", got)
	}
	if got := Fold("#"); got != "#" {
		t.Errorf("Fold(#) = %q, want #", got)
	}
}
