package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"harshagw/wordfreq/internal/engine"
	"harshagw/wordfreq/internal/filter"
	"harshagw/wordfreq/internal/freq"
)

// TestCase is an input text with its expected report.
type TestCase struct {
	Name    string
	Text    string
	Options []filter.Option
	Top     int

	Total      uint64
	Unique     uint64
	MostCommon string // "" when no word survives
	Count      uint64
	TopWords   []string
}

// Category groups related cases.
type Category struct {
	Name  string
	Cases []TestCase
}

func main() {
	fmt.Println("Word Frequency Verification")
	fmt.Println("===========================")

	passed := 0
	failed := 0

	for _, category := range getTestCategories() {
		fmt.Printf("\n%s\n", category.Name)
		fmt.Println(strings.Repeat("-", len(category.Name)))

		for _, tc := range category.Cases {
			if runTestCase(tc) {
				passed++
			} else {
				failed++
			}
		}
	}

	fmt.Println()
	fmt.Println("========================================")
	fmt.Printf("Results: %d passed, %d failed, %d total\n", passed, failed, passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
	fmt.Println("\nAll tests passed!")
}

func runTestCase(tc TestCase) bool {
	cfg, err := filter.New(tc.Options...)
	if err != nil {
		fmt.Printf("  ✗ %s\n", tc.Name)
		fmt.Printf("    Error: %v\n", err)
		return false
	}

	r, err := engine.New(engine.DefaultConfig(cfg)).Run(tc.Text, tc.Top)
	if err != nil {
		fmt.Printf("  ✗ %s\n", tc.Name)
		fmt.Printf("    Error: %v\n", err)
		return false
	}

	var problems []string
	if r.TotalWords != tc.Total {
		problems = append(problems, fmt.Sprintf("total words: expected %d, got %d", tc.Total, r.TotalWords))
	}
	if r.UniqueWords != tc.Unique {
		problems = append(problems, fmt.Sprintf("unique words: expected %d, got %d", tc.Unique, r.UniqueWords))
	}
	switch {
	case tc.MostCommon == "" && r.MostCommon != nil:
		problems = append(problems, fmt.Sprintf("most common: expected none, got %q", r.MostCommon.Word))
	case tc.MostCommon != "" && r.MostCommon == nil:
		problems = append(problems, fmt.Sprintf("most common: expected %q, got none", tc.MostCommon))
	case r.MostCommon != nil && (r.MostCommon.Word != tc.MostCommon || r.MostCommon.Count != tc.Count):
		problems = append(problems, fmt.Sprintf("most common: expected %q x%d, got %q x%d",
			tc.MostCommon, tc.Count, r.MostCommon.Word, r.MostCommon.Count))
	}
	if tc.Top > 0 {
		if got := words(r.Top); !slices.Equal(got, tc.TopWords) {
			problems = append(problems, fmt.Sprintf("top: expected %v, got %v", tc.TopWords, got))
		}
	}

	if len(problems) > 0 {
		fmt.Printf("  ✗ %s\n", tc.Name)
		for _, p := range problems {
			fmt.Printf("    %s\n", p)
		}
		return false
	}

	fmt.Printf("  ✓ %s\n", tc.Name)
	return true
}

func words(entries []freq.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out
}

func getTestCategories() []Category {
	return []Category{
		{
			Name: "Basic Counting",
			Cases: []TestCase{
				{Name: "empty text", Text: "", Total: 0, Unique: 0},
				{Name: "whitespace only", Text: " \t\n\n  ", Total: 0, Unique: 0},
				{Name: "case folding", Text: "The the THE fox", Total: 4, Unique: 2, MostCommon: "the", Count: 3},
				{Name: "single word", Text: "hello", Total: 1, Unique: 1, MostCommon: "hello", Count: 1},
				{Name: "newlines separate words", Text: "one\ntwo\r\nthree\tone", Total: 4, Unique: 3, MostCommon: "one", Count: 2},
			},
		},
		{
			Name: "Normalization",
			Cases: []TestCase{
				{Name: "punctuation stripped", Text: "Hello, hello! HELLO?", Total: 3, Unique: 1, MostCommon: "hello", Count: 3},
				{Name: "inner punctuation joins", Text: "don't dont", Total: 2, Unique: 1, MostCommon: "dont", Count: 2},
				{Name: "punctuation-only dropped", Text: "... --- !!! word", Total: 1, Unique: 1, MostCommon: "word", Count: 1},
				{Name: "digits kept", Text: "route66 Route66 66", Total: 3, Unique: 2, MostCommon: "route66", Count: 2},
				{Name: "unicode letters", Text: "Éclair éclair ÉCLAIR", Total: 3, Unique: 1, MostCommon: "éclair", Count: 3},
			},
		},
		{
			Name: "Filtering",
			Cases: []TestCase{
				{
					Name: "min length", Text: "cat dog elephant",
					Options: []filter.Option{filter.WithMinLength(4)},
					Total:   1, Unique: 1, MostCommon: "elephant", Count: 1,
				},
				{
					Name: "min length counts runes", Text: "café cafe caf",
					Options: []filter.Option{filter.WithMinLength(4)},
					Total:   2, Unique: 2, MostCommon: "cafe", Count: 1,
				},
				{
					Name: "min length zero", Text: "a bb",
					Options: []filter.Option{filter.WithMinLength(0)},
					Total:   2, Unique: 2, MostCommon: "a", Count: 1,
				},
				{
					Name: "starts with", Text: "Apple apple banana",
					Options: []filter.Option{filter.WithStartPrefix('a')},
					Total:   2, Unique: 1, MostCommon: "apple", Count: 2,
				},
				{
					Name: "starts with folds case", Text: "Apple apple banana",
					Options: []filter.Option{filter.WithStartPrefix('A')},
					Total:   2, Unique: 1, MostCommon: "apple", Count: 2,
				},
				{
					Name: "both constraints", Text: "ant anteater antelope bee",
					Options: []filter.Option{filter.WithMinLength(5), filter.WithStartPrefix('a')},
					Total:   2, Unique: 2, MostCommon: "anteater", Count: 1,
				},
				{
					Name: "everything filtered", Text: "a b c",
					Options: []filter.Option{filter.WithMinLength(2)},
					Total:   0, Unique: 0,
				},
				{
					Name: "non-alphanumeric prefix matches nothing", Text: "apple banana",
					Options: []filter.Option{filter.WithStartPrefix('#')},
					Total:   0, Unique: 0,
				},
			},
		},
		{
			Name: "Tie Break",
			Cases: []TestCase{
				{Name: "ant bee", Text: "ant bee", Total: 2, Unique: 2, MostCommon: "ant", Count: 1},
				{Name: "bee ant", Text: "bee ant", Total: 2, Unique: 2, MostCommon: "ant", Count: 1},
				{Name: "tie at higher count", Text: "zeta alpha zeta alpha mid", Total: 5, Unique: 3, MostCommon: "alpha", Count: 2},
				{Name: "byte order", Text: "b B a A", Total: 4, Unique: 2, MostCommon: "a", Count: 2},
			},
		},
		{
			Name: "Top Words",
			Cases: []TestCase{
				{
					Name: "top three", Text: "b a c a b a d", Top: 3,
					Total: 7, Unique: 4, MostCommon: "a", Count: 3,
					TopWords: []string{"a", "b", "c"},
				},
				{
					Name: "top larger than table", Text: "y x", Top: 10,
					Total: 2, Unique: 2, MostCommon: "x", Count: 1,
					TopWords: []string{"x", "y"},
				},
			},
		},
	}
}
