package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aqbifzl/rscheck/pkg/checker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	checker.NopReporter
	words   []string
	lines   []int
	errs    int
	summary checker.Stats
}

func (c *collector) Typo(t checker.Typo) {
	c.words = append(c.words, t.Word)
	c.lines = append(c.lines, t.Line)
}

func (c *collector) FileError(string, error) { c.errs++ }
func (c *collector) Summary(s checker.Stats) { c.summary = s }

func newChecker(t *testing.T, rec checker.Reporter, words ...string) *checker.Checker {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")), 0644))

	opts := checker.DefaultOptions()
	opts.Wordlists = []string{path}
	return checker.New(opts, rec)
}

func TestInputHandlerStart(t *testing.T) {
	rec := &collector{}
	h := NewInputHandler(newChecker(t, rec, "let", "value", "count"), false)

	stats, err := h.Start(strings.NewReader("let valeu = count\nlet totalCuont\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"valeu", "total", "cuont"}, rec.words)
	assert.Equal(t, []int{0, 1, 1}, rec.lines)
	assert.Equal(t, checker.Stats{FilesChecked: 1, Typos: 3}, stats)
	assert.Equal(t, stats, rec.summary)
}

func TestInputHandlerMissingWordlist(t *testing.T) {
	opts := checker.DefaultOptions()
	opts.Wordlists = []string{filepath.Join(t.TempDir(), "none.txt")}
	h := NewInputHandler(checker.New(opts, nil), false)

	_, err := h.Start(strings.NewReader("text"))
	assert.Error(t, err)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestInputHandlerReadError(t *testing.T) {
	rec := &collector{}
	h := NewInputHandler(newChecker(t, rec, "ok"), false)

	stats, err := h.Start(io.MultiReader(strings.NewReader("ok\n"), brokenReader{}))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 1, rec.errs)
}
