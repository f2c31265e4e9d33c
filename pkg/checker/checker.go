// Package checker runs the spell check: it builds the dictionary and ignore
// tries, walks the targets, and reports every identifier part that is not a
// known word.
package checker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/aqbifzl/rscheck/internal/utils"
	"github.com/aqbifzl/rscheck/pkg/dictionary"
	"github.com/aqbifzl/rscheck/pkg/walk"
	"github.com/aqbifzl/rscheck/pkg/words"
	"github.com/charmbracelet/log"
)

const (
	DefaultMin = 2
	DefaultMax = 20

	maxLineSize = 1024 * 1024
)

// Options is the input of a checking run.
type Options struct {
	Targets   []string
	Wordlists []string
	Ignore    []string
	// Min and Max are inclusive word length bounds, in bytes
	Min int
	Max int
	// Filter selects the files that are checked; nil checks everything
	Filter *walk.Filter
	// Classifiers overrides words.DefaultClassifiers when set
	Classifiers []words.Classifier
}

// DefaultOptions returns options with the default length bounds.
func DefaultOptions() Options {
	return Options{
		Min: DefaultMin,
		Max: DefaultMax,
	}
}

// Checker holds the tries and counters of one run.
type Checker struct {
	opts     Options
	reporter Reporter
	words    *dictionary.Trie
	ignore   *dictionary.Trie
	stats    Stats
}

// New creates a checker. A nil reporter discards all events.
func New(opts Options, reporter Reporter) *Checker {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if opts.Classifiers == nil {
		opts.Classifiers = words.DefaultClassifiers
	}
	return &Checker{
		opts:     opts,
		reporter: reporter,
	}
}

// NewWithTries creates a checker over tries that are already built.
func NewWithTries(opts Options, reporter Reporter, wordTrie, ignoreTrie *dictionary.Trie) *Checker {
	c := New(opts, reporter)
	c.words = wordTrie
	c.ignore = ignoreTrie
	return c
}

// Build loads the ignore lists and then the wordlists.
// Any error here is fatal for the run and is returned as *dictionary.LoadError.
func (c *Checker) Build() error {
	loader := dictionary.NewLoader(c.opts.Min, c.opts.Max)

	ignore, err := loader.LoadIgnore(c.opts.Ignore)
	if err != nil {
		return err
	}
	wordTrie, err := loader.LoadWordlists(c.opts.Wordlists, ignore)
	if err != nil {
		return err
	}

	log.Debugf("Dictionary ready: %d words, %d ignored", wordTrie.Len(), ignore.Len())
	c.ignore = ignore
	c.words = wordTrie
	return nil
}

// Reporter returns the reporter events are sent to.
func (c *Checker) Reporter() Reporter {
	return c.reporter
}

// Stats returns the counters collected so far.
func (c *Checker) Stats() Stats {
	return c.stats
}

// Run builds the tries if needed, checks every target and reports the summary.
// The counters start from zero on every call.
func (c *Checker) Run() (Stats, error) {
	if c.words == nil || c.ignore == nil {
		if err := c.Build(); err != nil {
			return Stats{}, err
		}
	}

	c.stats = Stats{}
	for _, target := range c.opts.Targets {
		c.checkTarget(target)
	}

	c.reporter.Summary(c.stats)
	return c.stats, nil
}

func (c *Checker) checkTarget(target string) {
	info, err := os.Stat(target)
	if err != nil {
		c.fail(target, err)
		return
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			log.Debugf("Skipping %s: not a regular file (%s)", target, info.Mode().Type())
			return
		}
		skip, err := c.opts.Filter.SkipFile(target)
		if err != nil {
			c.fail(target, err)
			return
		}
		if skip {
			log.Debugf("Skipping filtered target %s", target)
			return
		}
		c.checkPath(target)
		return
	}

	err = c.opts.Filter.Walk(target, func(e walk.Entry) {
		switch {
		case e.Err != nil:
			c.fail(e.Path, e.Err)
		case e.IsDir:
			c.stats.DirsChecked++
		default:
			c.checkPath(e.Path)
		}
	})
	if err != nil {
		c.fail(target, err)
	}
}

// checkPath checks one file and records a failure without stopping the run.
func (c *Checker) checkPath(path string) {
	c.stats.FilesChecked++
	c.reporter.FileStarted(path)
	if err := c.CheckFile(path); err != nil {
		c.fail(path, err)
	}
	c.reporter.FileDone(path)
}

func (c *Checker) fail(path string, err error) {
	log.Debugf("Failed to check %s (%s): %v", path, utils.ClassifyError(err), err)
	c.stats.Errors++
	c.reporter.FileError(path, err)
}

// CheckFile checks every line of the file at path.
func (c *Checker) CheckFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return c.CheckReader(path, file)
}

// CheckReader checks every line read from r, reporting typos under name.
// Lines that are not valid UTF-8 are skipped but still counted.
func (c *Checker) CheckReader(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		if utf8.ValidString(line) {
			c.CheckLine(name, line, lineNum)
		} else {
			log.Debugf("Skipping invalid line %d in %s", lineNum, name)
		}
		lineNum++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read line %d: %w", lineNum, err)
	}
	return nil
}

// CheckLine checks a single line and returns how many typos it contained.
func (c *Checker) CheckLine(name, line string, lineNum int) int {
	found := 0
	for _, token := range words.ExtractWords(line) {
		for _, word := range words.DecomposeWith(c.opts.Classifiers, token) {
			if c.IsKnown(word) || !c.IsEligible(word) {
				continue
			}
			found++
			c.stats.Typos++
			c.reporter.Typo(Typo{
				Path:  name,
				Word:  word,
				Token: token,
				Line:  lineNum,
			})
		}
	}
	return found
}

// IsKnown reports whether word is in the dictionary.
func (c *Checker) IsKnown(word string) bool {
	return c.words != nil && c.words.Search(word)
}

// IsEligible reports whether an unknown word may be reported: its length is
// within bounds and it is not on the ignore list.
func (c *Checker) IsEligible(word string) bool {
	if !utils.WithinBounds(word, c.opts.Min, c.opts.Max) {
		return false
	}
	return c.ignore == nil || !c.ignore.Search(word)
}
