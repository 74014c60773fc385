package domain

import "go.trai.ch/zerr"

var (
	// ErrDepQuery is returned when the toolchain's dependency-listing
	// subprocess exits non-zero. The scanner treats it as "no discovered
	// dependencies" and continues.
	ErrDepQuery = zerr.New("dependency query failed")

	// ErrCompileFailed is returned when any compile in a batch exits
	// non-zero. The whole batch is reported failed and no cache entries
	// are written.
	ErrCompileFailed = zerr.New("compile failed")

	// ErrLinkFailed is returned when the linker exits non-zero. Hard
	// error, no retry.
	ErrLinkFailed = zerr.New("link failed")

	// ErrExecutableNotFound is returned by run when no linked executable
	// exists yet.
	ErrExecutableNotFound = zerr.New("executable not found, build first")
)
