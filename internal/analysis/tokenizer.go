package analysis

import (
	"iter"
	"unicode"
)

// Fields lazily yields the maximal runs of non-whitespace in text.
// Any run of Unicode whitespace, newlines included, separates candidates.
func Fields(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range text {
			if !unicode.IsSpace(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(text[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(text[start:])
		}
	}
}
