package domain

import (
	"path/filepath"
	"strings"
)

// TargetDirName is the build output directory created under the project
// root.
const TargetDirName = "target"

// CacheFileName is the cache store file, kept directly under the target
// directory so it is shared across profiles.
const CacheFileName = "mason_cache.json"

// Layout resolves every build output location for a project root and
// profile. It is passed explicitly to the components that touch the
// filesystem so tests can redirect output instead of relying on a hidden
// global.
type Layout struct {
	// Root is the absolute project root.
	Root string
	// Profile selects the output subdirectory.
	Profile Profile
}

// NewLayout creates a Layout for the given absolute root and profile.
func NewLayout(root string, profile Profile) Layout {
	return Layout{Root: filepath.Clean(root), Profile: profile}
}

// OutputDir is where objects and the linked executable land.
func (l Layout) OutputDir() string {
	return filepath.Join(l.Root, TargetDirName, l.Profile.Dir())
}

// CachePath is the location of the persisted cache store.
func (l Layout) CachePath() string {
	return filepath.Join(l.Root, TargetDirName, CacheFileName)
}

// ExecutablePath is the linked output, named after the project root
// directory.
func (l Layout) ExecutablePath() string {
	name := filepath.Base(l.Root)
	if name == "." || name == string(filepath.Separator) {
		name = "a.out"
	}
	return filepath.Join(l.OutputDir(), name)
}

// ObjectPath maps a source file to its object file in the output directory.
// The root-relative source path is flattened into the object name so two
// sources with the same basename in different directories cannot collide.
func (l Layout) ObjectPath(source string) string {
	rel := l.RelKey(source)
	flat := strings.ReplaceAll(rel, string(filepath.Separator), "_")
	ext := filepath.Ext(flat)
	return filepath.Join(l.OutputDir(), strings.TrimSuffix(flat, ext)+".o")
}

// RelKey converts an absolute path to the project-root-relative form used as
// a cache key. Paths outside the root are returned unchanged.
func (l Layout) RelKey(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// AbsPath converts a stored relative key back to an absolute path under the
// root. Keys that are already absolute are returned unchanged.
func (l Layout) AbsPath(key string) string {
	if filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(l.Root, key)
}
