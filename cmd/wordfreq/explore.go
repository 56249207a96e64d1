package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"harshagw/wordfreq/internal/analysis"
	"harshagw/wordfreq/internal/freq"
	"harshagw/wordfreq/internal/report"
)

const defaultTop = 10

var commandSuggestions = []prompt.Suggest{
	{Text: "stats", Description: "Show totals and the most common word"},
	{Text: "top", Description: "List the most frequent words"},
	{Text: "count", Description: "Show the count of a word"},
	{Text: "prefix", Description: "List words starting with a prefix"},
	{Text: "match", Description: "List words matching a regular expression"},
	{Text: "fuzzy", Description: "List words within an edit distance"},
	{Text: "positions", Description: "Show where a word occurred"},
	{Text: "help", Description: "Show help"},
	{Text: "quit", Description: "Exit"},
}

// explorer is an interactive shell over a frozen frequency table.
type explorer struct {
	table      *freq.Table
	normalizer *analysis.Normalizer
	out        io.Writer
}

func newExplorer(table *freq.Table, out io.Writer) *explorer {
	return &explorer{
		table:      table,
		normalizer: analysis.NewNormalizer(),
		out:        out,
	}
}

func (e *explorer) Run() {
	fmt.Fprintln(e.out)
	e.printHelp()
	fmt.Fprintln(e.out)

	p := prompt.New(
		e.executor,
		e.completer,
		prompt.OptionPrefix("wordfreq >> "),
		prompt.OptionTitle("wordfreq"),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && isQuit(in)
		}),
	)
	p.Run()
}

func isQuit(input string) bool {
	switch strings.TrimSpace(input) {
	case "quit", "exit":
		return true
	}
	return false
}

func (e *explorer) completer(d prompt.Document) []prompt.Suggest {
	if strings.Contains(d.TextBeforeCursor(), " ") {
		return nil
	}
	return prompt.FilterHasPrefix(commandSuggestions, d.GetWordBeforeCursor(), true)
}

func (e *explorer) printHelp() {
	fmt.Fprintln(e.out, "Commands:")
	fmt.Fprintln(e.out, "  stats                  - Show totals and the most common word")
	fmt.Fprintln(e.out, "  top [N]                - List the N most frequent words (default 10)")
	fmt.Fprintln(e.out, "  count <word>           - Show how often a word occurred")
	fmt.Fprintln(e.out, "  prefix <p>             - List words starting with p")
	fmt.Fprintln(e.out, "  match <regex>          - List words fully matching regex")
	fmt.Fprintln(e.out, "  fuzzy <word> [dist]    - List words within dist edits (default 1)")
	fmt.Fprintln(e.out, "  positions <word>       - Show token positions of a word")
	fmt.Fprintln(e.out, "  help                   - Show this help")
	fmt.Fprintln(e.out, "  quit                   - Exit")
}

func (e *explorer) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case "stats":
		e.cmdStats()
	case "top":
		e.cmdTop(parts[1:])
	case "count":
		e.cmdCount(parts[1:])
	case "prefix":
		e.cmdPrefix(parts[1:])
	case "match":
		e.cmdMatch(parts[1:])
	case "fuzzy":
		e.cmdFuzzy(parts[1:])
	case "positions":
		e.cmdPositions(parts[1:])
	case "help":
		e.printHelp()
	case "quit", "exit":
		fmt.Fprintln(e.out, "Goodbye!")
	default:
		fmt.Fprintf(e.out, "Unknown command: %s\n", cmd)
	}
}

// word normalizes a query word the same way the text was normalized.
func (e *explorer) word(args []string, usage string) (string, bool) {
	if len(args) < 1 {
		fmt.Fprintln(e.out, "Usage: "+usage)
		return "", false
	}
	w := e.normalizer.Normalize(args[0])
	if w == "" {
		fmt.Fprintf(e.out, "'%s' has no alphanumeric characters\n", args[0])
		return "", false
	}
	return w, true
}

func (e *explorer) cmdStats() {
	if err := report.Write(e.out, report.Compute(e.table)); err != nil {
		fmt.Fprintf(e.out, "Error: %v\n", err)
	}
}

func (e *explorer) cmdTop(args []string) {
	n := defaultTop
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintf(e.out, "Invalid count: %s\n", args[0])
			return
		}
		n = v
	}
	e.printEntries(report.Top(e.table, n), "No words")
}

func (e *explorer) cmdCount(args []string) {
	w, ok := e.word(args, "count <word>")
	if !ok {
		return
	}
	count, _ := e.table.Count(w)
	fmt.Fprintf(e.out, "'%s': %d occurrences\n", w, count)
}

func (e *explorer) cmdPrefix(args []string) {
	p, ok := e.word(args, "prefix <p>")
	if !ok {
		return
	}
	entries, err := e.table.PrefixEntries(p)
	if err != nil {
		fmt.Fprintf(e.out, "Error: %v\n", err)
		return
	}
	e.printEntries(entries, "No words starting with "+p)
}

func (e *explorer) cmdMatch(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(e.out, "Usage: match <regex>")
		return
	}
	entries, err := e.table.MatchingEntries(args[0])
	if err != nil {
		fmt.Fprintf(e.out, "Error: %v\n", err)
		return
	}
	e.printEntries(entries, "No words matching "+args[0])
}

func (e *explorer) cmdFuzzy(args []string) {
	w, ok := e.word(args, "fuzzy <word> [dist]")
	if !ok {
		return
	}
	dist := uint64(1)
	if len(args) > 1 {
		var err error
		dist, err = strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			fmt.Fprintf(e.out, "Invalid distance: %s\n", args[1])
			return
		}
	}
	entries, err := e.table.FuzzyEntries(w, uint8(dist))
	if err != nil {
		fmt.Fprintf(e.out, "Error: %v\n", err)
		return
	}
	e.printEntries(entries, "No words near "+w)
}

func (e *explorer) cmdPositions(args []string) {
	w, ok := e.word(args, "positions <word>")
	if !ok {
		return
	}
	positions := e.table.Positions(w)
	if len(positions) == 0 {
		fmt.Fprintf(e.out, "No occurrences of '%s'\n", w)
		return
	}
	fmt.Fprintf(e.out, "Positions of '%s' (%d): %v\n", w, len(positions), positions)
}

func (e *explorer) printEntries(entries []freq.Entry, empty string) {
	if len(entries) == 0 {
		fmt.Fprintln(e.out, empty)
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(e.out, "  %s: %d\n", entry.Word, entry.Count)
	}
}
