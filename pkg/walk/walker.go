package walk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	gitignore "github.com/monochromegane/go-gitignore"
)

// Entry is one item produced by Walk. When Err is set the entry could not be
// inspected and IsDir is meaningless.
type Entry struct {
	Path  string
	IsDir bool
	Err   error
}

// Walk visits everything below root in lexical order. The root itself is not
// reported. Excluded directories are pruned, skipped files are not reported,
// and errors are reported as entries without stopping the walk.
// A symlinked root is followed; entries are still reported below root as given.
func (f *Filter) Walk(root string, visit func(Entry)) error {
	walkRoot := root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		walkRoot = resolved
	}
	displayPath := func(path string) string {
		if walkRoot == root {
			return path
		}
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return path
		}
		return filepath.Join(root, rel)
	}

	var matcher gitignore.IgnoreMatcher
	if f != nil && f.Gitignore {
		matcher = loadGitignore(walkRoot)
	}

	return filepath.WalkDir(walkRoot, func(realPath string, d fs.DirEntry, err error) error {
		path := displayPath(realPath)
		if err != nil {
			visit(Entry{Path: path, Err: err})
			if d != nil && d.IsDir() && realPath != walkRoot {
				return fs.SkipDir
			}
			return nil
		}
		if realPath == walkRoot {
			return nil
		}

		isDir, err := resolveIsDir(realPath, d)
		if err != nil {
			visit(Entry{Path: path, Err: err})
			return nil
		}

		if matcher != nil && matcher.Match(realPath, isDir) {
			log.Debugf("Skipping %s: matched .gitignore", path)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if isDir {
			excluded, err := f.IsExcludedPath(path)
			if err != nil {
				visit(Entry{Path: path, Err: err})
				return nil
			}
			if excluded {
				log.Debugf("Skipping excluded directory %s", path)
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			visit(Entry{Path: path, IsDir: true})
			return nil
		}

		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		skip, err := f.SkipFile(path)
		if err != nil {
			visit(Entry{Path: path, Err: err})
			return nil
		}
		if skip {
			log.Debugf("Skipping filtered file %s", path)
			return nil
		}
		visit(Entry{Path: path})
		return nil
	})
}

// resolveIsDir follows symlinks the way a plain stat would.
// WalkDir itself never descends into linked directories.
func resolveIsDir(path string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.IsDir(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func loadGitignore(root string) gitignore.IgnoreMatcher {
	path := filepath.Join(root, ".gitignore")
	file, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warnf("Could not read %s: %v", path, err)
		}
		return nil
	}
	defer file.Close()
	return gitignore.NewGitIgnoreFromReader(root, file)
}
