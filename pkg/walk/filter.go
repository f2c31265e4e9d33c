// Package walk finds the files a checking run visits: it walks target
// directories and applies the path and extension exclusion rules.
package walk

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aqbifzl/rscheck/internal/utils"
)

// Filter decides which files and directories are skipped.
// The zero value skips nothing.
type Filter struct {
	// Extensions, when non-empty, is the allow list of file extensions (without dot)
	Extensions []string
	// ExcludeExtensions lists file extensions that are never checked
	ExcludeExtensions []string
	// Gitignore makes Walk honor the .gitignore at the root of each walked directory
	Gitignore bool

	excluded map[string]struct{}
}

// NewFilter creates a filter. Every excluded path must exist; it is stored
// in canonical form so that differently spelled paths still match.
func NewFilter(extensions, excludeExtensions, excludePaths []string, gitignore bool) (*Filter, error) {
	f := &Filter{
		Extensions:        normalizeExtensions(extensions),
		ExcludeExtensions: normalizeExtensions(excludeExtensions),
		Gitignore:         gitignore,
		excluded:          make(map[string]struct{}, len(excludePaths)),
	}
	for _, path := range excludePaths {
		canonical, err := utils.CanonicalPath(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve excluded path %s: %w", path, err)
		}
		f.excluded[canonical] = struct{}{}
	}
	return f, nil
}

func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// IsExcludedPath reports whether path resolves to one of the excluded paths.
func (f *Filter) IsExcludedPath(path string) (bool, error) {
	if f == nil || len(f.excluded) == 0 {
		return false, nil
	}
	canonical, err := utils.CanonicalPath(path)
	if err != nil {
		return false, err
	}
	_, ok := f.excluded[canonical]
	return ok, nil
}

// SkipFile applies the path exclusions and then the extension rules to a file.
func (f *Filter) SkipFile(path string) (bool, error) {
	if f == nil {
		return false, nil
	}
	excluded, err := f.IsExcludedPath(path)
	if err != nil || excluded {
		return excluded, err
	}
	return f.skipExtension(path), nil
}

func (f *Filter) skipExtension(path string) bool {
	ext := extension(path)
	if ext == "" {
		return len(f.Extensions) > 0
	}
	if slices.Contains(f.ExcludeExtensions, ext) {
		return true
	}
	if len(f.Extensions) > 0 && !slices.Contains(f.Extensions, ext) {
		return true
	}
	return false
}

// extension returns the file extension without the dot. Dotfiles such as
// .bashrc have no extension.
func extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
