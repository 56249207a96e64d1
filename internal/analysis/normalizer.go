package analysis

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// IsAlphanumeric reports whether r is a Unicode letter or number.
func IsAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Normalizer removes non-alphanumeric runes and applies full Unicode
// lowercasing. A single rune may lower to several (U+0130 becomes "i̇").
//
// A Normalizer is not safe for concurrent use.
type Normalizer struct {
	t transform.Transformer
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		t: transform.Chain(
			runes.Remove(runes.Predicate(func(r rune) bool { return !IsAlphanumeric(r) })),
			cases.Lower(language.Und),
		),
	}
}

// Normalize returns the normalized form of candidate, or "" if nothing
// alphanumeric remains.
func (n *Normalizer) Normalize(candidate string) string {
	out, _, err := transform.String(n.t, candidate)
	if err != nil {
		return ""
	}
	return out
}

// Fold lowercases s without removing anything.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
