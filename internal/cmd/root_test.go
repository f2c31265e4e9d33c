package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aqbifzl/rscheck/pkg/config"
	"github.com/aqbifzl/rscheck/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir      string
	wordlist string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	t.Setenv("APPDATA", filepath.Join(home, "appdata"))

	f := &fixture{dir: t.TempDir()}
	f.wordlist = f.write(t, "words.txt", "hello\nworld\nfoo\nbar\n")
	return f
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_TextReport(t *testing.T) {
	f := newFixture(t)
	target := f.write(t, "src/main.rs", "hello wrold\n")

	out, _, err := execute(t, "", "-t", target, "-w", f.wordlist, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "-> "+target+"\n")
	assert.Contains(t, out, "  * wrold:0\n")
	assert.Contains(t, out, "->Files checked: 1\n")
	assert.Contains(t, out, "->Typos found: 1\n")
}

func TestRootCommand_JSONReport(t *testing.T) {
	f := newFixture(t)
	f.write(t, "src/a.go", "fooBar baz_qux\n")
	f.write(t, "src/b.md", "nothing here\n")

	out, _, err := execute(t, "", "-t", filepath.Join(f.dir, "src"), "-w", f.wordlist, "-e", "go", "--format", "json")
	require.NoError(t, err)

	var words []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["kind"] == "typo" {
			words = append(words, rec["word"].(string))
		}
	}
	assert.Equal(t, []string{"baz", "qux"}, words)
}

func TestRootCommand_Stdin(t *testing.T) {
	f := newFixture(t)

	out, _, err := execute(t, "hello wrold\n", "--stdin", "-w", f.wordlist, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "-> <stdin>\n")
	assert.Contains(t, out, "  * wrold:0\n")
}

func TestRootCommand_FailOnTypos(t *testing.T) {
	f := newFixture(t)
	target := f.write(t, "a.txt", "wrold\n")

	_, _, err := execute(t, "", "-t", target, "-w", f.wordlist, "--fail-on-typos")
	assert.True(t, errors.Is(err, ErrTyposFound))

	clean := f.write(t, "b.txt", "hello\n")
	_, _, err = execute(t, "", "-t", clean, "-w", f.wordlist, "--fail-on-typos")
	assert.NoError(t, err)
}

func TestRootCommand_Validation(t *testing.T) {
	f := newFixture(t)
	target := f.write(t, "a.txt", "hello\n")
	missing := filepath.Join(f.dir, "missing")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no target", []string{"-w", f.wordlist}, "target"},
		{"no wordlist", []string{"-t", target}, "wordlist"},
		{"missing target", []string{"-t", missing, "-w", f.wordlist}, missing},
		{"missing ignore", []string{"-t", target, "-w", f.wordlist, "-i", missing}, missing},
		{"min over max", []string{"-t", target, "-w", f.wordlist, "--min", "5", "--max", "3"}, "must not exceed"},
		{"stdin with target", []string{"--stdin", "-t", target, "-w", f.wordlist}, "cannot be combined"},
		{"bad format", []string{"-t", target, "-w", f.wordlist, "--format", "xml"}, "unknown output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRootCommand_UnreadableWordlist(t *testing.T) {
	f := newFixture(t)
	target := f.write(t, "a.txt", "hello\n")
	dirAsWordlist := filepath.Join(f.dir, "lists")
	require.NoError(t, os.MkdirAll(dirAsWordlist, 0755))

	_, _, err := execute(t, "", "-t", target, "-w", dirAsWordlist)
	require.Error(t, err)
	var loadErr *dictionary.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestRootCommand_ConfigFileMerge(t *testing.T) {
	f := newFixture(t)
	target := f.write(t, "a.txt", "hello ab abcdefgh\n")
	cfgPath := f.write(t, "rscheck.toml", "[check]\nmax = 5\n\n[dict]\nwordlists = [\"words.txt\"]\n")

	out, _, err := execute(t, "", "--config", cfgPath, "-t", target, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "  * ab:0\n")
	assert.NotContains(t, out, "abcdefgh")

	out, _, err = execute(t, "", "--config", cfgPath, "-t", target, "--max", "20", "--min", "3", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "  * abcdefgh:0\n")
	assert.NotContains(t, out, "  * ab:0")
}

func TestRootCommand_Version(t *testing.T) {
	_, errOut, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, errOut, Version)
	assert.Contains(t, errOut, "rscheck")
}

func TestConfigInitAndPath(t *testing.T) {
	newFixture(t)

	out, _, err := execute(t, "", "config", "init", "--min", "3", "--format", "json")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.FileExists(t, path)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Check.Min)
	assert.Equal(t, "json", cfg.Output.Format)

	out, _, err = execute(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))

	_, _, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)
	cfg, err = config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Check.Min)
}

func TestConfigInitCustomPath(t *testing.T) {
	f := newFixture(t)
	custom := filepath.Join(f.dir, "nested", "custom.toml")

	out, _, err := execute(t, "", "--config", custom, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, custom, strings.TrimSpace(out))
	assert.FileExists(t, custom)
}
