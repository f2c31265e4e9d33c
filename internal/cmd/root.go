package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aqbifzl/rscheck/internal/cli"
	"github.com/aqbifzl/rscheck/internal/logger"
	"github.com/aqbifzl/rscheck/pkg/checker"
	"github.com/aqbifzl/rscheck/pkg/config"
	"github.com/aqbifzl/rscheck/pkg/report"
	"github.com/aqbifzl/rscheck/pkg/walk"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is injected at build time via -ldflags
var Version = "0.3.0"

// ErrTyposFound is returned when --fail-on-typos is set and the run found typos.
var ErrTyposFound = errors.New("typos found")

type rootOptions struct {
	targets           []string
	wordlists         []string
	ignore            []string
	extensions        []string
	excludeExtensions []string
	excludePaths      []string
	min               int
	max               int
	configPath        string
	format            string
	debug             bool
	stdin             bool
	gitignore         bool
	noColor           bool
	failOnTypos       bool
	version           bool
}

// NewRootCommand creates and returns the root cobra command for rscheck
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rscheck",
		Short: "Find misspelled words in source code identifiers",
		Long: `rscheck reads source files line by line, splits every identifier into
words (camelCase and snake_case aware) and reports the words that are not in
any of the given wordlists.

Examples:
  rscheck -t src -w /usr/share/dict/words
  rscheck -t . -w words.txt -i ignore.txt -e go -e rs -p vendor
  git diff | rscheck --stdin -w words.txt --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(cmd.ErrOrStderr(), opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				printVersion(cmd.ErrOrStderr())
				return nil
			}
			return runCheck(cmd, opts)
		},
	}

	registerFlags(cmd.Flags(), opts)
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default is the platform config dir)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Toggle debug logging")

	cmd.AddCommand(newConfigCommand(opts))

	return cmd
}

func registerFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.StringArrayVarP(&opts.targets, "target", "t", nil, "File or directory to check (repeatable)")
	flags.StringArrayVarP(&opts.wordlists, "wordlist", "w", nil, "Wordlist with one known word per line (repeatable)")
	flags.StringArrayVarP(&opts.ignore, "ignore", "i", nil, "List of words that are never reported (repeatable)")
	flags.StringSliceVarP(&opts.extensions, "extension", "e", nil, "Only check files with these extensions")
	flags.StringSliceVarP(&opts.excludeExtensions, "exclude-extension", "x", nil, "Skip files with these extensions")
	flags.StringArrayVarP(&opts.excludePaths, "exclude-path", "p", nil, "Skip this file or directory (repeatable)")
	flags.IntVar(&opts.min, "min", checker.DefaultMin, "Shortest word that is reported")
	flags.IntVar(&opts.max, "max", checker.DefaultMax, "Longest word that is reported")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: text, json or msgpack")
	flags.BoolVar(&opts.stdin, "stdin", false, "Check text read from stdin instead of targets")
	flags.BoolVar(&opts.gitignore, "gitignore", false, "Skip files matched by the target's .gitignore")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable styled text output")
	flags.BoolVar(&opts.failOnTypos, "fail-on-typos", false, "Exit with status 2 when typos are found")
	flags.BoolVarP(&opts.version, "version", "v", false, "Show current version")
}

// settings is the merged result of config file and flags.
type settings struct {
	checker   checker.Options
	filter    config.FilterConfig
	format    report.Format
	color     bool
	stdin     bool
	failOnAny bool
}

// resolveSettings merges flags over cfg. List flags extend the config lists;
// scalar flags win only when given on the command line.
func resolveSettings(flags *pflag.FlagSet, opts *rootOptions, cfg *config.Config) (*settings, error) {
	s := &settings{
		stdin:     opts.stdin,
		failOnAny: opts.failOnTypos,
		color:     cfg.Output.Color && !opts.noColor,
	}

	s.checker = checker.DefaultOptions()
	s.checker.Targets = opts.targets
	s.checker.Wordlists = append(append([]string{}, cfg.Dict.Wordlists...), opts.wordlists...)
	s.checker.Ignore = append(append([]string{}, cfg.Dict.Ignore...), opts.ignore...)
	s.checker.Min = cfg.Check.Min
	s.checker.Max = cfg.Check.Max
	if flags.Changed("min") {
		s.checker.Min = opts.min
	}
	if flags.Changed("max") {
		s.checker.Max = opts.max
	}

	s.filter = config.FilterConfig{
		Extensions:        append(append([]string{}, cfg.Filter.Extensions...), opts.extensions...),
		ExcludeExtensions: append(append([]string{}, cfg.Filter.ExcludeExtensions...), opts.excludeExtensions...),
		ExcludePaths:      append(append([]string{}, cfg.Filter.ExcludePaths...), opts.excludePaths...),
		Gitignore:         cfg.Filter.Gitignore || opts.gitignore,
	}

	formatName := cfg.Output.Format
	if flags.Changed("format") {
		formatName = opts.format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	s.format = format

	return s, s.validate()
}

func (s *settings) validate() error {
	if s.stdin && len(s.checker.Targets) > 0 {
		return errors.New("--stdin cannot be combined with -t/--target")
	}
	if !s.stdin && len(s.checker.Targets) == 0 {
		return errors.New("at least one target is required (-t/--target)")
	}
	if len(s.checker.Wordlists) == 0 {
		return errors.New("at least one wordlist is required (-w/--wordlist)")
	}
	if s.checker.Min < 0 {
		return fmt.Errorf("--min must not be negative, got %d", s.checker.Min)
	}
	if s.checker.Min > s.checker.Max {
		return fmt.Errorf("--min (%d) must not exceed --max (%d)", s.checker.Min, s.checker.Max)
	}

	groups := [][]string{s.checker.Targets, s.checker.Wordlists, s.checker.Ignore, s.filter.ExcludePaths}
	for _, paths := range groups {
		for _, path := range paths {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("path %s cannot be used: %w", path, err)
			}
		}
	}
	return nil
}

func runCheck(cmd *cobra.Command, opts *rootOptions) error {
	cfg, cfgPath, err := config.LoadConfigWithPriority(opts.configPath)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		log.Debugf("Using config file: %s", cfgPath)
	}

	s, err := resolveSettings(cmd.Flags(), opts, cfg)
	if err != nil {
		return err
	}

	filter, err := walk.NewFilter(s.filter.Extensions, s.filter.ExcludeExtensions, s.filter.ExcludePaths, s.filter.Gitignore)
	if err != nil {
		return err
	}
	s.checker.Filter = filter

	reporter, err := report.New(s.format, cmd.OutOrStdout(), s.color)
	if err != nil {
		return err
	}
	log.Debug("Check settings:",
		"targets", len(s.checker.Targets),
		"wordlists", len(s.checker.Wordlists),
		"min", s.checker.Min,
		"max", s.checker.Max,
		"format", s.format)

	c := checker.New(s.checker, reporter)

	var stats checker.Stats
	if s.stdin {
		in := cmd.InOrStdin()
		stats, err = cli.NewInputHandler(c, isTerminal(in)).Start(in)
	} else {
		stats, err = c.Run()
	}
	if err != nil {
		return err
	}

	if stream, ok := reporter.(interface{ Err() error }); ok && stream.Err() != nil {
		return fmt.Errorf("failed to write report: %w", stream.Err())
	}
	if s.failOnAny && stats.Typos > 0 {
		return ErrTyposFound
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
