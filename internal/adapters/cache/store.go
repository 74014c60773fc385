// Package cache implements the persisted build cache store: a flat JSON
// file mapping project-relative paths to their last-known content hash and
// timestamp, plus the toolchain configuration signature of the last build.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Entry is the cache-relevant subset of a file record.
type Entry struct {
	Hash         string    `json:"hash"`
	LastModified time.Time `json:"last_modified"`
}

// storeFile is the on-disk shape. Pretty-printed JSON so the cache stays
// human-inspectable.
type storeFile struct {
	Files    map[string]Entry `json:"files"`
	Compiler string           `json:"compiler,omitempty"`
	Flags    []string         `json:"flags"`
	SavedAt  time.Time        `json:"saved_at"`
}

// Store implements ports.CacheStore. It is confined to the orchestrating
// goroutine; the parallel compile region never touches it.
type Store struct {
	path     string
	root     string
	files    map[string]Entry
	compiler string
	flags    []string
}

// Open reads the persisted store at path. Any read or parse failure yields
// an empty store: the cache is always re-derivable from scratch. Absolute
// keys written by older versions are normalized to root-relative form before
// first use.
func Open(root, path string) *Store {
	s := &Store{
		path:  filepath.Clean(path),
		root:  filepath.Clean(root),
		files: make(map[string]Entry),
	}

	data, err := os.ReadFile(s.path) //nolint:gosec // Path is cleaned and provided by trusted caller
	if err != nil {
		return s
	}
	var sf storeFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return s
	}

	for key, entry := range sf.Files {
		s.files[s.normalizeKey(key)] = entry
	}
	s.compiler = sf.Compiler
	s.flags = sf.Flags
	return s
}

// normalizeKey converts an absolute key under the root to relative form.
// Keys outside the root (or already relative) pass through unchanged.
func (s *Store) normalizeKey(key string) string {
	if !filepath.IsAbs(key) {
		return key
	}
	rel, err := filepath.Rel(s.root, key)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return key
	}
	return rel
}

// Save writes the store as pretty-printed JSON, creating the output
// directory if needed and stamping the save time.
func (s *Store) Save() error {
	sf := storeFile{
		Files:    s.files,
		Compiler: s.compiler,
		Flags:    s.flags,
		SavedAt:  time.Now().UTC(),
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write cache store")
	}

	return nil
}

// FileMatches reports whether a stored entry exists for key and its hash
// equals hash. The timestamp is informational and never compared.
func (s *Store) FileMatches(key, hash string) bool {
	entry, ok := s.files[key]
	return ok && entry.Hash == hash
}

// ConfigMatches reports whether the stored compiler identity and exact
// ordered flags list equal the current run's values.
func (s *Store) ConfigMatches(compiler string, flags []string) bool {
	return s.compiler == compiler && slices.Equal(s.flags, flags)
}

// SetConfig records the current run's toolchain configuration.
func (s *Store) SetConfig(compiler string, flags []string) {
	s.compiler = compiler
	s.flags = slices.Clone(flags)
}

// Update creates or overwrites the entry for key.
func (s *Store) Update(key, hash string, lastModified time.Time) {
	s.files[key] = Entry{Hash: hash, LastModified: lastModified}
}

// Prune drops entries whose key the keep function rejects, preventing
// unbounded growth from deleted files.
func (s *Store) Prune(keep func(key string) bool) int {
	dropped := 0
	for key := range s.files {
		if !keep(key) {
			delete(s.files, key)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of entries, for tests.
func (s *Store) Len() int {
	return len(s.files)
}

// Keys returns the stored relative keys in lexical order, for tests.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.files))
	for k := range s.files {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
