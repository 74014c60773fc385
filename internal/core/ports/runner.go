package ports

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// ToolRunner abstracts the toolchain subprocess invocations. Every call
// blocks for the full duration of the external process; no timeouts are
// imposed and started processes are never interrupted.
type ToolRunner interface {
	// QueryDeps runs the toolchain's dependency-listing mode for a source
	// file and returns its raw stdout. It must not produce object output.
	// A non-zero toolchain exit is reported as domain.ErrDepQuery so
	// callers can degrade softly.
	QueryDeps(ctx context.Context, driver domain.Driver, flags []string, source string) (string, error)

	// Compile produces an object file from a source file. flags must
	// already include the profile flag.
	Compile(ctx context.Context, driver domain.Driver, flags []string, source, object string) error

	// Link assembles the complete object list into a single executable.
	Link(ctx context.Context, driver domain.Driver, objects []string, output string) error
}
