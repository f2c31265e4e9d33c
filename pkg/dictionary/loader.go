package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/aqbifzl/rscheck/internal/utils"
	"github.com/charmbracelet/log"
)

// IgnoreMinLength is the only length rule applied to ignore-list lines.
// Ignore lists do not use the configured min/max bounds.
const IgnoreMinLength = 3

// maxLineSize bounds a single wordlist line.
const maxLineSize = 1024 * 1024

// LineFilter decides whether a wordlist line goes into the trie.
type LineFilter func(line string) bool

// LoadError is returned when a wordlist or ignore file cannot be read.
// Any LoadError aborts a checking run.
type LoadError struct {
	Path string
	Kind utils.ErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error occurred reading %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(path string, err error) *LoadError {
	return &LoadError{
		Path: path,
		Kind: utils.ClassifyError(err),
		Err:  err,
	}
}

// FeedStats counts what happened to the lines of one file
type FeedStats struct {
	Lines    int
	Inserted int
	Rejected int
	Invalid  int
}

// Loader builds the ignore and dictionary tries from files.
type Loader struct {
	minLength int
	maxLength int
}

// NewLoader creates a loader using the inclusive word-length bounds for wordlists.
func NewLoader(minLength, maxLength int) *Loader {
	return &Loader{
		minLength: minLength,
		maxLength: maxLength,
	}
}

// LoadIgnore builds the ignore trie. Lines shorter than IgnoreMinLength are dropped.
func (l *Loader) LoadIgnore(paths []string) (*Trie, error) {
	ignore := NewTrie()
	keep := func(line string) bool {
		return len(line) >= IgnoreMinLength
	}
	for _, path := range paths {
		stats, err := l.Feed(ignore, path, keep)
		if err != nil {
			return nil, err
		}
		log.Debugf("Ignore list %s: %d lines, %d inserted", path, stats.Lines, stats.Inserted)
	}
	return ignore, nil
}

// LoadWordlists builds the dictionary trie. A line is inserted when its length
// is within the loader bounds and it is not in ignore.
func (l *Loader) LoadWordlists(paths []string, ignore *Trie) (*Trie, error) {
	words := NewTrie()
	keep := func(line string) bool {
		if !utils.WithinBounds(line, l.minLength, l.maxLength) {
			return false
		}
		return ignore == nil || !ignore.Search(line)
	}
	for _, path := range paths {
		stats, err := l.Feed(words, path, keep)
		if err != nil {
			return nil, err
		}
		log.Debugf("Wordlist %s: %d lines, %d inserted, %d rejected", path, stats.Lines, stats.Inserted, stats.Rejected)
	}
	return words, nil
}

// Feed reads path line by line and inserts the lines accepted by keep.
// Lines that are not valid UTF-8 are skipped.
func (l *Loader) Feed(trie *Trie, path string, keep LineFilter) (FeedStats, error) {
	var stats FeedStats

	file, err := os.Open(path)
	if err != nil {
		return stats, newLoadError(path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			stats.Invalid++
			continue
		}
		if keep != nil && !keep(line) {
			stats.Rejected++
			continue
		}
		trie.Insert(line)
		stats.Inserted++
	}
	if err := scanner.Err(); err != nil {
		return stats, newLoadError(path, fmt.Errorf("failed to read line %d: %w", stats.Lines, err))
	}
	if stats.Invalid > 0 {
		log.Debugf("Skipped %d invalid lines in %s", stats.Invalid, path)
	}
	return stats, nil
}
