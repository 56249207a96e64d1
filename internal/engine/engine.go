package engine

import (
	"context"
	"fmt"
	"log/slog"

	"harshagw/wordfreq/internal/analysis"
	"harshagw/wordfreq/internal/filter"
	"harshagw/wordfreq/internal/freq"
	"harshagw/wordfreq/internal/logging"
	"harshagw/wordfreq/internal/report"
)

type Config struct {
	Filter   filter.Config
	Analyzer analysis.Analyzer
	Logger   *slog.Logger
}

func DefaultConfig(f filter.Config) Config {
	return Config{
		Filter:   f,
		Analyzer: analysis.NewSimple(),
		Logger:   logging.Discard(),
	}
}

// Engine runs the analyze, filter and count pass over a text buffer.
type Engine struct {
	filter   filter.Config
	analyzer analysis.Analyzer
	logger   *slog.Logger
}

// New creates an engine. Nil fields in config fall back to the defaults.
func New(config Config) *Engine {
	def := DefaultConfig(config.Filter)
	if config.Analyzer == nil {
		config.Analyzer = def.Analyzer
	}
	if config.Logger == nil {
		config.Logger = def.Logger
	}
	return &Engine{
		filter:   config.Filter,
		analyzer: config.Analyzer,
		logger:   config.Logger,
	}
}

// Process builds the frequency table for text. Every normalized token is
// checked against the filter exactly once, in order.
func (e *Engine) Process(text string) (*freq.Table, error) {
	ctx := context.Background()
	trace := e.logger.Enabled(ctx, logging.LevelTrace)

	builder := freq.NewBuilder()
	var seen uint64
	for tp := range e.analyzer.Analyze(text) {
		seen++
		if !filter.Accept(e.filter, tp.Token) {
			if trace {
				e.logger.Log(ctx, logging.LevelTrace, "token rejected", "token", tp.Token, "position", tp.Position)
			}
			continue
		}
		builder.Add(tp.Token, tp.Position)
	}

	e.logger.Debug("text analyzed",
		"bytes", len(text),
		"tokens", seen,
		"accepted", builder.Total(),
		"unique", builder.Len(),
		"filter", e.filter.String(),
	)

	table, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build frequency table: %w", err)
	}
	return table, nil
}

// Run processes text and returns its report, listing the top n words when
// n > 0.
func (e *Engine) Run(text string, n int) (report.Report, error) {
	table, err := e.Process(text)
	if err != nil {
		return report.Report{}, err
	}
	defer table.Close()

	r := report.Compute(table)
	r.Top = report.Top(table, n)
	return r, nil
}
