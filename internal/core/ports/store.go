package ports

import "time"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// CacheStore persists the last-known content hash and timestamp per file
// between runs, plus the toolchain configuration signature of the last
// build. Keys are project-root-relative paths. Implementations are not
// required to be safe for concurrent use: all cache mutation happens on the
// orchestrating goroutine, strictly before and after the parallel compile
// region.
type CacheStore interface {
	// FileMatches reports whether an entry exists for the key and its
	// stored hash equals hash. Timestamps are never compared.
	FileMatches(key, hash string) bool

	// ConfigMatches reports whether the stored compiler identity and the
	// exact ordered flags list equal the current run's values.
	ConfigMatches(compiler string, flags []string) bool

	// SetConfig records the current run's toolchain configuration.
	SetConfig(compiler string, flags []string)

	// Update creates or overwrites the entry for key.
	Update(key, hash string, lastModified time.Time)

	// Prune drops every entry whose key the keep function rejects and
	// returns the number of dropped entries.
	Prune(keep func(key string) bool) int

	// Save persists the store. A save failure is reported to the caller
	// but must not undo an otherwise-successful build.
	Save() error
}

// StoreOpener opens the cache store for a project. Loading never hard-fails:
// a missing or corrupt file yields an empty store.
type StoreOpener interface {
	Open(root, path string) CacheStore
}
