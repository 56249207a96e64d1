package analysis

import "iter"

type TokenPosition struct {
	Token    string
	Position uint64
}

// Analyzer defines the interface for text analysis.
type Analyzer interface {
	Analyze(text string) iter.Seq[TokenPosition]
}

// Simple splits on whitespace, strips non-alphanumerics and case-folds each
// candidate. Candidates that normalize to nothing are dropped.
type Simple struct {
	normalizer *Normalizer
}

func NewSimple() *Simple {
	return &Simple{normalizer: NewNormalizer()}
}

// Analyze yields normalized tokens with their ordinal positions.
// Positions count emitted tokens only, starting at 0.
func (a *Simple) Analyze(text string) iter.Seq[TokenPosition] {
	return func(yield func(TokenPosition) bool) {
		var position uint64
		for candidate := range Fields(text) {
			token := a.normalizer.Normalize(candidate)
			if token == "" {
				continue
			}
			if !yield(TokenPosition{Token: token, Position: position}) {
				return
			}
			position++
		}
	}
}

// Tokens collects the normalized tokens of text.
func Tokens(a Analyzer, text string) []string {
	var tokens []string
	for tp := range a.Analyze(text) {
		tokens = append(tokens, tp.Token)
	}
	return tokens
}
