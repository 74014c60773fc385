// Package scanner discovers source and header files and builds the
// dependency graph by querying the toolchain for each source's includes.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/mason/internal/adapters/fs"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scanner walks a project tree and populates a build graph with file records
// and forward/reverse dependency edges. Scanning runs sequentially on the
// calling goroutine; each dependency query is one blocking subprocess.
type Scanner struct {
	walker *fs.Walker
	runner ports.ToolRunner
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(walker *fs.Walker, runner ports.ToolRunner, logger ports.Logger) *Scanner {
	return &Scanner{
		walker: walker,
		runner: runner,
		logger: logger,
	}
}

// Scan walks root for recognized C/C++ files, then asks the toolchain for
// every source's header dependencies with the given flags, recording forward
// and reverse edges. Filesystem errors are fatal; a failed dependency query
// degrades to "no dependencies" for that source.
func (s *Scanner) Scan(ctx context.Context, root string, flags, ignores []string) (*domain.Graph, error) {
	graph := domain.NewGraph()

	for path, err := range s.walker.WalkFiles(root, ignores) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "project scan failed"), "root", root)
		}
		if !domain.IsTracked(path) {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
		}
		rec, err := domain.NewFileRecord(abs)
		if err != nil {
			return nil, err
		}
		graph.Add(rec)
	}

	for _, src := range graph.Paths() {
		if !domain.IsSource(src) {
			continue
		}
		out, err := s.runner.QueryDeps(ctx, domain.DriverFor(src), flags, src)
		if err != nil {
			if errors.Is(err, domain.ErrDepQuery) {
				// Soft degradation: the source keeps building with no
				// discovered dependencies, at the risk of missing a
				// header change until the source itself changes.
				s.logger.Warn(fmt.Sprintf("dependency query failed for %s, assuming no dependencies", src))
				continue
			}
			return nil, err
		}
		for _, dep := range ParseDepOutput(root, out) {
			graph.Ensure(dep)
			graph.AddDependency(src, dep)
		}
	}

	return graph, nil
}

// ParseDepOutput extracts dependency paths from the toolchain's
// dependency-listing stdout. The output is whitespace-tokenized; the first
// token is the nominal target name and is discarded; trailing line
// continuations and colon markers are stripped; absolute paths and
// angle-bracket system headers are discarded; remaining tokens are kept only
// if they name an existing file, resolved against root, and are returned as
// absolute paths.
func ParseDepOutput(root, out string) []string {
	tokens := strings.Fields(out)
	if len(tokens) == 0 {
		return nil
	}

	var deps []string
	for _, token := range tokens[1:] {
		tok := strings.TrimRight(token, "\\:")
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, "/") || strings.HasPrefix(tok, "<") {
			continue
		}
		candidate := filepath.Join(root, tok)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		deps = append(deps, candidate)
	}
	return deps
}
