package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"harshagw/wordfreq/internal/freq"
)

// Report summarizes a frequency table.
type Report struct {
	TotalWords  uint64       `json:"total_words"`
	UniqueWords uint64       `json:"unique_words"`
	MostCommon  *freq.Entry  `json:"most_common"`
	Top         []freq.Entry `json:"top,omitempty"`
}

// Compute derives the report for t. MostCommon is nil for an empty table.
// Ties on the highest count go to the lexicographically smallest word.
func Compute(t *freq.Table) Report {
	var r Report
	for word, count := range t.All() {
		r.TotalWords += count
		r.UniqueWords++
		// All yields words in ascending order, so only a strictly higher
		// count may replace the current winner.
		if r.MostCommon == nil || count > r.MostCommon.Count {
			r.MostCommon = &freq.Entry{Word: word, Count: count}
		}
	}
	return r
}

// Top returns the n most frequent entries, by count descending then word
// ascending. n <= 0 returns nil.
func Top(t *freq.Table, n int) []freq.Entry {
	if n <= 0 {
		return nil
	}
	entries := t.Entries()
	sortByCount(entries)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// sortByCount sorts entries by count descending, then word ascending.
func sortByCount(entries []freq.Entry) {
	slices.SortStableFunc(entries, func(a, b freq.Entry) int {
		if a.Count > b.Count {
			return -1
		}
		if a.Count < b.Count {
			return 1
		}
		if a.Word < b.Word {
			return -1
		}
		if a.Word > b.Word {
			return 1
		}
		return 0
	})
}

// Write renders r as text.
func Write(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "Total words: %d\nUnique words: %d\n", r.TotalWords, r.UniqueWords); err != nil {
		return err
	}
	var err error
	if r.MostCommon != nil {
		_, err = fmt.Fprintf(w, "Most common word: '%s' (%d occurrences)\n", r.MostCommon.Word, r.MostCommon.Count)
	} else {
		_, err = fmt.Fprintln(w, "No words found after filtering.")
	}
	if err != nil {
		return err
	}
	if len(r.Top) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Top words:"); err != nil {
		return err
	}
	for i, e := range r.Top {
		if _, err := fmt.Fprintf(w, "  %d. %s: %d\n", i+1, e.Word, e.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON renders r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
