package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (and their parent directories) below a temp root.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("content\n"), 0644))
	}
	return root
}

func collect(t *testing.T, f *Filter, root string) (files, dirs []string) {
	t.Helper()
	err := f.Walk(root, func(e Entry) {
		require.NoError(t, e.Err)
		rel, err := filepath.Rel(root, e.Path)
		require.NoError(t, err)
		rel = filepath.ToSlash(rel)
		if e.IsDir {
			dirs = append(dirs, rel)
		} else {
			files = append(files, rel)
		}
	})
	require.NoError(t, err)
	return files, dirs
}

var tree = []string{"a.go", "b.txt", "sub/c.go", "sub/deeper/d.md", "vendor/e.go"}

func TestWalkWithoutFilter(t *testing.T) {
	root := makeTree(t, tree...)

	files, dirs := collect(t, nil, root)
	assert.Equal(t, []string{"a.go", "b.txt", "sub/c.go", "sub/deeper/d.md", "vendor/e.go"}, files)
	assert.Equal(t, []string{"sub", "sub/deeper", "vendor"}, dirs)
}

func TestWalkExtensionAllowList(t *testing.T) {
	root := makeTree(t, tree...)
	f, err := NewFilter([]string{"go"}, nil, nil, false)
	require.NoError(t, err)

	files, dirs := collect(t, f, root)
	assert.Equal(t, []string{"a.go", "sub/c.go", "vendor/e.go"}, files)
	assert.Equal(t, []string{"sub", "sub/deeper", "vendor"}, dirs)
}

func TestWalkExcludeExtension(t *testing.T) {
	root := makeTree(t, tree...)
	f, err := NewFilter(nil, []string{".txt", "md"}, nil, false)
	require.NoError(t, err)

	files, _ := collect(t, f, root)
	assert.Equal(t, []string{"a.go", "sub/c.go", "vendor/e.go"}, files)
}

func TestWalkExcludePathPrunesDirectory(t *testing.T) {
	root := makeTree(t, tree...)
	f, err := NewFilter(nil, nil, []string{filepath.Join(root, "vendor"), filepath.Join(root, "b.txt")}, false)
	require.NoError(t, err)

	files, dirs := collect(t, f, root)
	assert.Equal(t, []string{"a.go", "sub/c.go", "sub/deeper/d.md"}, files)
	assert.Equal(t, []string{"sub", "sub/deeper"}, dirs)
}

func TestWalkGitignore(t *testing.T) {
	root := makeTree(t, tree...)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.md\n"), 0644))

	f, err := NewFilter([]string{"go", "md"}, nil, nil, true)
	require.NoError(t, err)

	files, _ := collect(t, f, root)
	assert.Equal(t, []string{"a.go", "sub/c.go", "vendor/e.go"}, files)
}

func TestWalkGitignoreDisabled(t *testing.T) {
	root := makeTree(t, tree...)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.md\n"), 0644))

	f, err := NewFilter([]string{"md"}, nil, nil, false)
	require.NoError(t, err)

	files, _ := collect(t, f, root)
	assert.Equal(t, []string{"sub/deeper/d.md"}, files)
}

func TestNewFilterRejectsMissingExcludedPath(t *testing.T) {
	_, err := NewFilter(nil, nil, []string{filepath.Join(t.TempDir(), "missing")}, false)
	assert.Error(t, err)
}

func TestSkipFile(t *testing.T) {
	root := makeTree(t, "main.go", "README", ".bashrc", "notes.txt")
	f, err := NewFilter([]string{"go"}, nil, []string{filepath.Join(root, "notes.txt")}, false)
	require.NoError(t, err)

	tests := []struct {
		name string
		skip bool
	}{
		{"main.go", false},
		{"README", true},
		{".bashrc", true},
		{"notes.txt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, err := f.SkipFile(filepath.Join(root, tt.name))
			require.NoError(t, err)
			assert.Equal(t, tt.skip, skip)
		})
	}
}

func TestSkipFileNoExtensionWithoutAllowList(t *testing.T) {
	root := makeTree(t, "Makefile")
	f, err := NewFilter(nil, []string{"txt"}, nil, false)
	require.NoError(t, err)

	skip, err := f.SkipFile(filepath.Join(root, "Makefile"))
	require.NoError(t, err)
	assert.False(t, skip)
}

func TestWalkMissingRootReportsError(t *testing.T) {
	var entries []Entry
	err := (&Filter{}).Walk(filepath.Join(t.TempDir(), "missing"), func(e Entry) {
		entries = append(entries, e)
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Error(t, entries[0].Err)
}

func TestWalkSymlinkedRoot(t *testing.T) {
	root := makeTree(t, tree...)
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(root, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, dirs := collect(t, nil, link)
	assert.Equal(t, []string{"a.go", "b.txt", "sub/c.go", "sub/deeper/d.md", "vendor/e.go"}, files)
	assert.Equal(t, []string{"sub", "sub/deeper", "vendor"}, dirs)
}

func TestWalkSymlinkedRootWithExcludedPath(t *testing.T) {
	root := makeTree(t, tree...)
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(root, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	f, err := NewFilter(nil, nil, []string{filepath.Join(root, "vendor")}, false)
	require.NoError(t, err)

	files, _ := collect(t, f, link)
	assert.NotContains(t, files, "vendor/e.go")
	assert.Contains(t, files, "sub/c.go")
}
