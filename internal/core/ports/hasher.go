package ports

// Hasher computes content digests for files.
type Hasher interface {
	// ComputeFileHash returns the digest of the file's content as a
	// fixed-width hex string.
	ComputeFileHash(path string) (string, error)
}
