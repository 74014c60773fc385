package domain

import (
	"os"
	"time"

	"go.trai.ch/zerr"
)

// FileRecord tracks everything the build needs to know about one source or
// header file. Identity is the canonical absolute path; a record is created
// during scanning and discarded at process exit. Only the hash/timestamp
// subset survives a run, inside the cache store.
type FileRecord struct {
	// Path is the canonical absolute location. Immutable once created.
	Path string
	// Hash is the content digest. Empty until first computed.
	Hash string
	// LastModified is the last observed filesystem modification time.
	// Informational only; hash equality is the correctness signal.
	LastModified time.Time
	// Deps are the headers this file directly includes (forward edges).
	Deps []string
	// Dependents are the files that include this one (reverse edges,
	// derived from Deps and never independently authoritative).
	Dependents []string
	// Dirty marks the file for recompilation. Transient, recomputed
	// every run and never persisted.
	Dirty bool
}

// NewFileRecord stats the file and returns a record with an empty hash.
// The record starts clean; the cache check and dirty propagation decide
// whether it needs rebuilding.
func NewFileRecord(path string) (*FileRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return &FileRecord{
		Path:         path,
		LastModified: info.ModTime(),
	}, nil
}

// Refresh re-reads the modification time from disk and recomputes the
// content hash with the given function. The hash is always recomputed so it
// reflects the current content, not the last observed one.
func (r *FileRecord) Refresh(hashFn func(string) (string, error)) error {
	info, err := os.Stat(r.Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", r.Path)
	}
	r.LastModified = info.ModTime()

	hash, err := hashFn(r.Path)
	if err != nil {
		return err
	}
	r.Hash = hash
	return nil
}
