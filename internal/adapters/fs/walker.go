package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/mason/internal/core/domain"
)

// Walker walks a project tree yielding candidate files.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file under root, skipping version-control
// directories, the build output directory, and any ignored directory names.
// A filesystem error during the walk is yielded to the caller and aborts the
// scan; it is not swallowed.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// shouldSkipDir reports whether a directory is excluded from scanning.
func (w *Walker) shouldSkipDir(name string, ignores []string) bool {
	switch name {
	case ".git", ".jj", domain.TargetDirName:
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
