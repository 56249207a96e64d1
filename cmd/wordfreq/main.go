package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"harshagw/wordfreq/internal/analysis"
	"harshagw/wordfreq/internal/config"
	"harshagw/wordfreq/internal/engine"
	"harshagw/wordfreq/internal/filter"
	"harshagw/wordfreq/internal/logging"
	"harshagw/wordfreq/internal/report"
	"harshagw/wordfreq/internal/source"
)

const usageLine = "wordfreq <file_path> [--min-length N] [--starts-with C]"

var errUsage = errors.New("usage: " + usageLine)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   usageLine,
		Short: "Count word frequencies in a text file",
		Long: `wordfreq reads a text file, normalizes every whitespace-separated word
(alphanumerics only, Unicode lowercased), applies optional filters and
reports total words, unique words and the most common word.

Ties for the most common word go to the alphabetically first word.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errUsage
			}
			return nil
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().String("min-length", "", "Only count words with at least N characters")
	cmd.Flags().String("starts-with", "", "Only count words starting with this character")
	cmd.Flags().Int("top", 0, "Also list the N most frequent words")
	cmd.Flags().Bool("json", false, "Output the report as JSON")
	cmd.Flags().BoolP("interactive", "i", false, "Explore the frequency table after the report")
	cmd.Flags().String("config", "", "Load default settings from a YAML file")
	cmd.Flags().String("log-level", "", "Log level: info, debug or trace")

	return cmd
}

func run(cmd *cobra.Command, path string, stdout, stderr io.Writer) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(settings.Logging.Level, stderr)

	cfg, err := buildFilter(cmd, settings)
	if err != nil {
		return err
	}

	buf, err := source.Open(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}
	defer buf.Close()
	logger.Debug("input loaded", "path", path, "bytes", buf.Len(), "compression", buf.Compression())

	eng := engine.New(engine.Config{Filter: cfg, Analyzer: analysis.NewSimple(), Logger: logger})
	table, err := eng.Process(buf.Text())
	if err != nil {
		return err
	}
	defer table.Close()

	r := report.Compute(table)
	r.Top = report.Top(table, settings.Top)
	if settings.JSON {
		err = report.WriteJSON(stdout, r)
	} else {
		err = report.Write(stdout, r)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		newExplorer(table, stdout).Run()
	}
	return nil
}

// loadSettings applies defaults, the optional config file, the environment
// and explicit flags, in that order.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if settings, err = config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("top") {
		settings.Top, _ = flags.GetInt("top")
		if settings.Top < 0 {
			return nil, fmt.Errorf("--top must be non-negative, got %d", settings.Top)
		}
	}
	if flags.Changed("json") {
		settings.JSON, _ = flags.GetBool("json")
	}
	if flags.Changed("log-level") {
		settings.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("starts-with") {
		settings.StartsWith, _ = flags.GetString("starts-with")
	}
	return settings, nil
}

// buildFilter constructs the immutable filter config. An explicit
// --min-length wins over the config file; an unparsable one is an error.
func buildFilter(cmd *cobra.Command, settings *config.Settings) (filter.Config, error) {
	raw, _ := cmd.Flags().GetString("min-length")
	arg := filter.ParseMinLength(raw, cmd.Flags().Changed("min-length"))
	if arg.State == filter.ArgAbsent && settings.MinLength != nil {
		arg = filter.MinLengthArg{State: filter.ArgSet, Value: *settings.MinLength}
	}

	opts, err := arg.Options()
	if err != nil {
		return filter.Config{}, fmt.Errorf("%w (%s)", err, usageLine)
	}
	opts = append(opts, filter.StartsWithOptions(settings.StartsWith)...)

	return filter.New(opts...)
}
