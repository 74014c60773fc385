// Package watcher implements recursive filesystem watching for watch mode.
// Events are delivered into a buffered channel that the command loop drains
// cooperatively; they never trigger a build by themselves.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const (
	eventChannelBuffer = 256
	// debounceWindow coalesces write bursts from editors that save a file
	// in several syscalls.
	debounceWindow = 100 * time.Millisecond
)

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	ignores   []string
	events    chan ports.WatchEvent
	debounce  *Debouncer
}

// NewWatcher creates a new filesystem watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching root recursively. Directories created later are
// added to the watch set as their create events arrive. Write events pass
// through a debouncer so one save shows up as one event.
func (w *Watcher) Start(ctx context.Context, root string, ignores []string) error {
	w.ignores = ignores
	w.debounce = NewDebouncer(debounceWindow, func(paths []string) {
		for _, p := range paths {
			select {
			case w.events <- ports.WatchEvent{Path: p, Op: ports.OpWrite}:
			case <-ctx.Done():
				return
			}
		}
	})
	for dir := range w.directories(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases its resources. Pending debounced
// writes are delivered first so a save right before shutdown is not lost.
func (w *Watcher) Stop() error {
	if w.debounce != nil {
		w.debounce.Flush()
	}
	return w.fsWatcher.Close()
}

// Events returns the buffered event stream. The channel is never closed;
// consumers drain it non-blockingly.
func (w *Watcher) Events() <-chan ports.WatchEvent {
	return w.events
}

// directories yields root and every watchable subdirectory.
func (w *Watcher) directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable directories rather than failing the watch.
				return nil //nolint:nilerr // Intentional
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && w.shouldSkip(d.Name()) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) shouldSkip(name string) bool {
	switch name {
	case ".git", ".jj", domain.TargetDirName:
		return true
	}
	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			we := convertEvent(event)
			if we == nil {
				continue
			}
			if we.Op == ports.OpWrite {
				w.debounce.Add(we.Path)
				continue
			}
			select {
			case w.events <- *we:
			case <-ctx.Done():
				return
			}
			if we.Op == ports.OpCreate {
				w.maybeWatchNewDir(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(err)
		}
	}
}

// maybeWatchNewDir adds a newly created directory tree to the watch set.
func (w *Watcher) maybeWatchNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || w.shouldSkip(info.Name()) {
		return
	}
	for dir := range w.directories(path) {
		_ = w.fsWatcher.Add(dir)
	}
}

func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	switch {
	case event.Op.Has(fsnotify.Write):
		return &ports.WatchEvent{Path: event.Name, Op: ports.OpWrite}
	case event.Op.Has(fsnotify.Create):
		return &ports.WatchEvent{Path: event.Name, Op: ports.OpCreate}
	case event.Op.Has(fsnotify.Remove):
		return &ports.WatchEvent{Path: event.Name, Op: ports.OpRemove}
	case event.Op.Has(fsnotify.Rename):
		return &ports.WatchEvent{Path: event.Name, Op: ports.OpRename}
	}
	return nil
}
