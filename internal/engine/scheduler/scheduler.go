// Package scheduler compiles the dirty subset of the build graph in
// parallel and drives the link step.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler dispatches compilation across a bounded worker pool and
// assembles the linked output.
type Scheduler struct {
	runner    ports.ToolRunner
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewScheduler creates a new Scheduler.
func NewScheduler(runner ports.ToolRunner, logger ports.Logger, telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{
		runner:    runner,
		logger:    logger,
		telemetry: telemetry,
	}
}

// compileTask is the owned snapshot of one dirty source handed to a worker.
// Workers never hold references into the graph.
type compileTask struct {
	source string
	object string
	driver domain.Driver
	flags  []string
}

// CompileDirty compiles every dirty compilable source, producing object
// files in the layout's output directory, and reports whether at least one
// object was (re)compiled, which decides whether a link is needed.
//
// The topological order establishes validity of the sequencing, but because
// sources never depend on other sources and all header content has already
// been hash-validated, every dirty source is safe to compile concurrently;
// the order is consumed only as the dirty compile set. The pool is sized to
// the logical CPU count. The first failure sets a shared flag so unstarted
// tasks skip work; already-running compiles finish but their output is not
// trusted.
//
// The batch is all-or-nothing with respect to the cache: on any failure no
// entries are written, not even for sources that did compile, and every
// dirty flag stays set so the next run retries the whole pending set. On
// success the compiled sources are marked clean and the store is refreshed
// for every graph node, headers included.
func (s *Scheduler) CompileDirty(
	ctx context.Context,
	graph *domain.Graph,
	store ports.CacheStore,
	layout domain.Layout,
	flags []string,
) (bool, error) {
	order, dropped := graph.TopoOrderDirty()
	for _, p := range dropped {
		s.logger.Warn(fmt.Sprintf("cyclic dependency chain, excluded from build order: %s", p))
	}

	work := make([]compileTask, 0, len(order))
	for _, src := range order {
		rec, ok := graph.Lookup(src)
		if !ok || !rec.Dirty {
			continue
		}
		work = append(work, compileTask{
			source: src,
			object: layout.ObjectPath(src),
			driver: domain.DriverFor(src),
			flags:  flags,
		})
	}

	if len(work) == 0 {
		// Everything is up to date; surface each source as a cached vertex.
		for _, p := range graph.Paths() {
			if domain.IsSource(p) {
				s.telemetry.Record("compile " + layout.RelKey(p)).Cached()
			}
		}
		s.refreshStore(graph, store, layout)
		return false, nil
	}

	if err := os.MkdirAll(layout.OutputDir(), 0o750); err != nil {
		return false, zerr.Wrap(err, "failed to create output directory")
	}

	var (
		failed   atomic.Bool
		mu       sync.Mutex
		compiled []string
		firstErr error
	)

	pool := new(errgroup.Group)
	pool.SetLimit(runtime.NumCPU())
	for _, task := range work {
		pool.Go(func() error {
			if failed.Load() {
				return nil
			}
			v := s.telemetry.Record("compile " + layout.RelKey(task.source))
			err := s.runner.Compile(ctx, task.driver, task.flags, task.source, task.object)
			v.Complete(err)
			if err != nil {
				failed.Store(true)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				s.logger.Error(err)
				return nil
			}
			mu.Lock()
			compiled = append(compiled, task.source)
			mu.Unlock()
			return nil
		})
	}
	_ = pool.Wait()

	if failed.Load() {
		return false, errors.Join(domain.ErrCompileFailed, firstErr)
	}

	for _, src := range compiled {
		if rec, ok := graph.Lookup(src); ok {
			rec.Dirty = false
			store.Update(layout.RelKey(src), rec.Hash, rec.LastModified)
		}
	}
	// Refresh entries for everything else too, headers included, so the
	// persisted cache reflects the latest observed state of the whole
	// tree.
	s.refreshStore(graph, store, layout)

	return len(compiled) > 0, nil
}

// refreshStore overwrites the cache entry of every graph node with its
// current hash and timestamp.
func (s *Scheduler) refreshStore(graph *domain.Graph, store ports.CacheStore, layout domain.Layout) {
	for rec := range graph.Records() {
		store.Update(layout.RelKey(rec.Path), rec.Hash, rec.LastModified)
	}
}

// Link assembles every object present on disk into the output executable.
// Membership is decided by object presence, not dirty state: a stale object
// from a prior run is still linked in. The C++ driver is used iff any
// C++-family source exists in the graph. Returns false when there were no
// objects to link.
func (s *Scheduler) Link(ctx context.Context, graph *domain.Graph, layout domain.Layout, output string) (bool, error) {
	var objects []string
	for _, p := range graph.Paths() {
		if !domain.IsSource(p) {
			continue
		}
		obj := layout.ObjectPath(p)
		if _, err := os.Stat(obj); err == nil {
			objects = append(objects, obj)
		}
	}
	if len(objects) == 0 {
		return false, nil
	}

	driver := domain.DriverC
	if graph.HasCxxSources() {
		driver = domain.DriverCPP
	}

	v := s.telemetry.Record("link " + layout.RelKey(output))
	err := s.runner.Link(ctx, driver, objects, output)
	v.Complete(err)
	if err != nil {
		return false, errors.Join(domain.ErrLinkFailed, err)
	}
	return true, nil
}
