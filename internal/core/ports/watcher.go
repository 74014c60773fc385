package ports

import "context"

// WatchOp classifies a filesystem change event.
type WatchOp int

const (
	// OpWrite is a modification of an existing file.
	OpWrite WatchOp = iota
	// OpCreate is a new file or directory.
	OpCreate
	// OpRemove is a deletion.
	OpRemove
	// OpRename is a rename or move.
	OpRename
)

// WatchEvent is a single filesystem change delivered by a Watcher.
type WatchEvent struct {
	Path string
	Op   WatchOp
}

// Watcher delivers filesystem change events for a directory tree. Events are
// informational in watch mode: they never trigger a build by themselves.
type Watcher interface {
	// Start begins watching root recursively and delivering events until
	// the context is canceled or Stop is called.
	Start(ctx context.Context, root string, ignores []string) error
	// Events is the buffered event stream. The channel is never closed;
	// drain it without blocking.
	Events() <-chan WatchEvent
	// Stop releases the watcher's resources.
	Stop() error
}
