package freq

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/roaring64"
	"github.com/couchbase/vellum"
)

// Builder accumulates token counts during a single pass before freezing
// them into an immutable Table.
type Builder struct {
	counts    map[string]uint64
	positions map[string]*roaring64.Bitmap // token -> accepted positions
	order     []string                     // tokens by first occurrence
	total     uint64
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		counts:    make(map[string]uint64),
		positions: make(map[string]*roaring64.Bitmap),
	}
}

// Add records one occurrence of token at position.
func (b *Builder) Add(token string, position uint64) {
	if _, ok := b.counts[token]; !ok {
		token = strings.Clone(token)
		b.order = append(b.order, token)
		b.positions[token] = roaring64.New()
	}
	b.counts[token]++
	b.positions[token].Add(position)
	b.total++
}

// Count returns the current count for token.
func (b *Builder) Count(token string) uint64 {
	return b.counts[token]
}

// Len returns the number of distinct tokens.
func (b *Builder) Len() int {
	return len(b.counts)
}

// Total returns the number of occurrences added.
func (b *Builder) Total() uint64 {
	return b.total
}

// Build freezes the counts into a Table. The builder must not be used
// afterwards.
func (b *Builder) Build() (*Table, error) {
	t := &Table{
		positions: b.positions,
		order:     b.order,
		total:     b.total,
		size:      len(b.counts),
	}
	if len(b.counts) == 0 {
		return t, nil
	}

	// vellum requires keys in lexicographic order
	terms := make([]string, 0, len(b.counts))
	for term := range b.counts {
		terms = append(terms, term)
	}
	slices.Sort(terms)

	var buf bytes.Buffer
	fstBuilder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create FST builder: %w", err)
	}
	for _, term := range terms {
		if err := fstBuilder.Insert([]byte(term), b.counts[term]); err != nil {
			return nil, fmt.Errorf("failed to insert %q: %w", term, err)
		}
	}
	if err := fstBuilder.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish FST: %w", err)
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to load FST: %w", err)
	}
	t.fst = fst

	b.counts = nil
	b.positions = nil
	b.order = nil
	return t, nil
}
