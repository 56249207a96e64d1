package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"harshagw/wordfreq/internal/freq"
)

func buildTable(t *testing.T, tokens ...string) *freq.Table {
	t.Helper()
	b := freq.NewBuilder()
	for i, tok := range tokens {
		b.Add(tok, uint64(i))
	}
	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { table.Close() })
	return table
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []string
		wantTotal  uint64
		wantUnique uint64
		wantMost   *freq.Entry
	}{
		{"empty", nil, 0, 0, nil},
		{"single", []string{"elephant"}, 1, 1, &freq.Entry{Word: "elephant", Count: 1}},
		{"clear winner", []string{"the", "the", "the", "fox"}, 4, 2, &freq.Entry{Word: "the", Count: 3}},
		{"tie picks smallest", []string{"ant", "bee"}, 2, 2, &freq.Entry{Word: "ant", Count: 1}},
		{"tie independent of insertion order", []string{"bee", "ant"}, 2, 2, &freq.Entry{Word: "ant", Count: 1}},
		{"tie among top only", []string{"zed", "zed", "cat", "cat", "ant"}, 5, 3, &freq.Entry{Word: "cat", Count: 2}},
		{"later higher count wins", []string{"ant", "zoo", "zoo"}, 3, 2, &freq.Entry{Word: "zoo", Count: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(buildTable(t, tt.tokens...))
			if r.TotalWords != tt.wantTotal {
				t.Errorf("TotalWords: got %d, want %d", r.TotalWords, tt.wantTotal)
			}
			if r.UniqueWords != tt.wantUnique {
				t.Errorf("UniqueWords: got %d, want %d", r.UniqueWords, tt.wantUnique)
			}
			if !reflect.DeepEqual(r.MostCommon, tt.wantMost) {
				t.Errorf("MostCommon: got %v, want %v", r.MostCommon, tt.wantMost)
			}
			if r.UniqueWords > r.TotalWords {
				t.Errorf("unique %d exceeds total %d", r.UniqueWords, r.TotalWords)
			}
		})
	}
}

func TestCompute_PermutationsAgree(t *testing.T) {
	perms := [][]string{
		{"b", "a", "c", "a", "b"},
		{"a", "a", "b", "b", "c"},
		{"c", "b", "b", "a", "a"},
		{"b", "c", "a", "b", "a"},
	}

	want := Compute(buildTable(t, perms[0]...))
	for _, p := range perms[1:] {
		got := Compute(buildTable(t, p...))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Compute(%v) = %+v, want %+v", p, got, want)
		}
	}
	if want.MostCommon.Word != "a" {
		t.Errorf("MostCommon: got %q, want a", want.MostCommon.Word)
	}
}

func TestTop(t *testing.T) {
	table := buildTable(t, "b", "a", "c", "a", "b", "d", "a")

	got := Top(table, 3)
	want := []freq.Entry{{Word: "a", Count: 3}, {Word: "b", Count: 2}, {Word: "c", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top(3): got %v, want %v", got, want)
	}

	if got := Top(table, 0); got != nil {
		t.Errorf("Top(0): got %v, want nil", got)
	}
	if got := Top(table, 10); len(got) != 4 {
		t.Errorf("Top(10): got %d entries, want 4", len(got))
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	r := Report{TotalWords: 4, UniqueWords: 2, MostCommon: &freq.Entry{Word: "the", Count: 3}}
	if err := Write(&buf, r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "Total words: 4\nUnique words: 2\nMost common word: 'the' (3 occurrences)\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Report{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "Total words: 0\nUnique words: 0\nNo words found after filtering.\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWrite_Top(t *testing.T) {
	var buf bytes.Buffer
	r := Report{
		TotalWords:  3,
		UniqueWords: 2,
		MostCommon:  &freq.Entry{Word: "a", Count: 2},
		Top:         []freq.Entry{{Word: "a", Count: 2}, {Word: "b", Count: 1}},
	}
	if err := Write(&buf, r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "Total words: 3\nUnique words: 2\nMost common word: 'a' (2 occurrences)\n" +
		"Top words:\n  1. a: 2\n  2. b: 1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	r := Report{TotalWords: 1, UniqueWords: 1, MostCommon: &freq.Entry{Word: "elephant", Count: 1}}
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["total_words"] != float64(1) {
		t.Errorf("total_words: got %v, want 1", decoded["total_words"])
	}
	most, ok := decoded["most_common"].(map[string]any)
	if !ok || most["word"] != "elephant" {
		t.Errorf("most_common: got %v", decoded["most_common"])
	}
}

func TestWriteJSON_EmptyHasNullMostCommon(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Report{}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"most_common": null`)) {
		t.Errorf("expected null most_common, got %s", buf.String())
	}
}
