// Package app implements the application layer for mason: it orchestrates
// scanning, dirty propagation, parallel compilation, linking, and the cache
// lifecycle around them.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/scanner"
	"go.trai.ch/mason/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App wires the build engine together behind the CLI.
type App struct {
	configLoader ports.ConfigLoader
	scanner      *scanner.Scanner
	scheduler    *scheduler.Scheduler
	hasher       ports.Hasher
	stores       ports.StoreOpener
	watcher      ports.Watcher
	logger       ports.Logger

	in  io.Reader
	out io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scan *scanner.Scanner,
	sched *scheduler.Scheduler,
	hasher ports.Hasher,
	stores ports.StoreOpener,
	watch ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scan,
		scheduler:    sched,
		hasher:       hasher,
		stores:       stores,
		watcher:      watch,
		logger:       logger,
		in:           os.Stdin,
		out:          os.Stdout,
	}
}

// SetIO redirects the interactive loop's input and output. Used by tests.
func (a *App) SetIO(in io.Reader, out io.Writer) {
	a.in = in
	a.out = out
}

// BuildOptions selects what to build.
type BuildOptions struct {
	// Root is the project root directory.
	Root string
	// Profile selects debug or release output.
	Profile domain.Profile
}

// Build performs one incremental build and returns the executable path.
// The cache is saved only after a fully successful batch; a failed compile
// leaves every dirty flag pending for the next invocation.
func (a *App) Build(ctx context.Context, opts BuildOptions) (string, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve project root")
	}

	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return "", err
	}

	layout := domain.NewLayout(root, opts.Profile)

	a.logger.Info("scanning sources in " + root)
	graph, err := a.scanner.Scan(ctx, root, cfg.Flags, cfg.Ignore)
	if err != nil {
		return "", err
	}

	store := a.stores.Open(root, layout.CachePath())

	// Entries for files no longer on disk would otherwise accumulate
	// forever.
	store.Prune(func(key string) bool {
		_, ok := graph.Lookup(layout.AbsPath(key))
		return ok
	})

	compileFlags := append(slices.Clone(cfg.Flags), opts.Profile.CompileFlag())
	compiler := domain.DriverC.Command()
	configChanged := !store.ConfigMatches(compiler, compileFlags)
	store.SetConfig(compiler, compileFlags)

	a.markDirty(graph, store, layout, configChanged)
	graph.PropagateDirty()

	needLink, err := a.scheduler.CompileDirty(ctx, graph, store, layout, compileFlags)
	if err != nil {
		return "", err
	}

	output := layout.ExecutablePath()
	if cfg.Output != "" {
		output = filepath.Join(layout.OutputDir(), cfg.Output)
	}

	if needLink {
		linked, err := a.scheduler.Link(ctx, graph, layout, output)
		if err != nil {
			return "", err
		}
		if linked {
			a.logger.Info("linked " + output)
		}
	} else {
		a.logger.Info("nothing to link")
	}

	if err := store.Save(); err != nil {
		// A cache write failure does not undo a successful build.
		a.logger.Warn(fmt.Sprintf("failed to save cache: %v", err))
	}

	return output, nil
}

// markDirty refreshes every record's hash and timestamp from disk and marks
// stale records. A configuration change invalidates everything, bypassing
// the hash check; otherwise the cached hash is the sole correctness signal.
func (a *App) markDirty(graph *domain.Graph, store ports.CacheStore, layout domain.Layout, configChanged bool) {
	for rec := range graph.Records() {
		if err := rec.Refresh(a.hasher.ComputeFileHash); err != nil {
			// The file vanished mid-run; treat it as changed.
			a.logger.Warn(fmt.Sprintf("failed to refresh %s: %v", rec.Path, err))
			rec.Dirty = true
			continue
		}
		if !configChanged && !store.FileMatches(layout.RelKey(rec.Path), rec.Hash) {
			rec.Dirty = true
		}
	}
	if configChanged {
		a.logger.Info("compiler or flags changed, invalidating cache")
		graph.MarkAllDirty()
	}
}

// Run builds the project and executes the produced binary, inheriting the
// caller's standard streams.
func (a *App) Run(ctx context.Context, opts BuildOptions) error {
	exe, err := a.Build(ctx, opts)
	if err != nil {
		return err
	}

	if _, err := os.Stat(exe); err != nil {
		return zerr.With(domain.ErrExecutableNotFound, "path", exe)
	}

	a.logger.Info("running " + exe)
	cmd := exec.CommandContext(ctx, exe) //nolint:gosec // Executable produced by this build
	cmd.Stdin = a.in
	cmd.Stdout = a.out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.Wrap(err, "program exited with error"), "path", exe)
	}
	return nil
}
