package freq

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/roaring64"
	"github.com/couchbase/vellum"
	"github.com/couchbase/vellum/levenshtein"
	"github.com/couchbase/vellum/regexp"
)

// Entry is a word and its occurrence count.
type Entry struct {
	Word  string `json:"word"`
	Count uint64 `json:"count"`
}

// Table is an immutable frequency table. Its dictionary is an FST keyed by
// word, so iteration is always in lexicographic byte order.
type Table struct {
	fst       *vellum.FST // nil when empty
	positions map[string]*roaring64.Bitmap
	order     []string
	total     uint64
	size      int
}

// Len returns the number of distinct words.
func (t *Table) Len() int { return t.size }

// Total returns the sum of all counts.
func (t *Table) Total() uint64 { return t.total }

// Count returns the count for word.
func (t *Table) Count(word string) (uint64, bool) {
	if t.fst == nil {
		return 0, false
	}
	val, exists, err := t.fst.Get([]byte(word))
	if err != nil || !exists {
		return 0, false
	}
	return val, true
}

// All yields every word and its count in lexicographic order.
func (t *Table) All() iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		if t.fst == nil {
			return
		}
		itr, err := t.fst.Iterator(nil, nil)
		if itr != nil {
			defer itr.Close()
		}
		for err == nil {
			key, val := itr.Current()
			if !yield(string(key), val) {
				return
			}
			err = itr.Next()
		}
	}
}

// Entries returns every entry in lexicographic order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.size)
	for word, count := range t.All() {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	return entries
}

// Order returns the words in order of first occurrence.
func (t *Table) Order() []string {
	return append([]string(nil), t.order...)
}

// Positions returns the accepted-token positions at which word occurred.
func (t *Table) Positions(word string) []uint64 {
	bm, ok := t.positions[word]
	if !ok {
		return nil
	}
	return bm.ToArray()
}

// collect drains an FST iterator into entries.
func collect(itr *vellum.FSTIterator, err error) ([]Entry, error) {
	var entries []Entry
	if err == vellum.ErrIteratorDone {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create iterator: %w", err)
	}
	defer itr.Close()

	for err == nil {
		key, val := itr.Current()
		entries = append(entries, Entry{Word: string(key), Count: val})
		err = itr.Next()
	}

	if err != vellum.ErrIteratorDone {
		return nil, err
	}
	return entries, nil
}

// PrefixEntries returns all entries whose word starts with prefix.
// Uses an FST range scan instead of an automaton.
func (t *Table) PrefixEntries(prefix string) ([]Entry, error) {
	if t.fst == nil {
		return nil, nil
	}
	start := []byte(prefix)
	end := prefixSuccessor(start)
	return collect(t.fst.Iterator(start, end))
}

// MatchingEntries returns all entries whose whole word matches pattern.
func (t *Table) MatchingEntries(pattern string) ([]Entry, error) {
	aut, err := regexp.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return t.searchWithAutomaton(aut)
}

// FuzzyEntries returns all entries within fuzziness edits of word.
func (t *Table) FuzzyEntries(word string, fuzziness uint8) ([]Entry, error) {
	builder, err := levenshtein.NewLevenshteinAutomatonBuilder(fuzziness, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create levenshtein builder: %w", err)
	}

	aut, err := builder.BuildDfa(word, fuzziness)
	if err != nil {
		return nil, fmt.Errorf("failed to build fuzzy automaton: %w", err)
	}

	return t.searchWithAutomaton(aut)
}

func (t *Table) searchWithAutomaton(aut vellum.Automaton) ([]Entry, error) {
	if t.fst == nil {
		return nil, nil
	}
	return collect(t.fst.Search(aut, nil, nil))
}

// Close releases the dictionary.
func (t *Table) Close() error {
	if t.fst == nil {
		return nil
	}
	err := t.fst.Close()
	t.fst = nil
	return err
}
