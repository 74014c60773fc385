package watcher

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func waitForEvent(t *testing.T, w *Watcher, path string, op ports.WatchOp) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-w.Events():
			require.True(t, ok, "event channel closed before the expected event")
			if ev.Path == path && ev.Op == op {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %v on %s", op, path)
		}
	}
}

func TestWatcherDeliversWriteEvents(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "main.c")
	require.NoError(t, os.WriteFile(file, []byte("int main(){}"), 0o644))

	w, err := NewWatcher(nopLogger{})
	require.NoError(t, err)
	defer w.Stop() //nolint:errcheck // Test cleanup

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root, nil))

	require.NoError(t, os.WriteFile(file, []byte("int main(){ return 1; }"), 0o644))
	waitForEvent(t, w, file, ports.OpWrite)
}

func TestWatcherPicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()

	w, err := NewWatcher(nopLogger{})
	require.NoError(t, err)
	defer w.Stop() //nolint:errcheck // Test cleanup

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root, nil))

	sub := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(sub, 0o755))
	waitForEvent(t, w, sub, ports.OpCreate)

	// Creating a directory races with adding it to the watch set; retry the
	// write until an event for the new file arrives.
	file := filepath.Join(sub, "util.c")
	require.NoError(t, os.WriteFile(file, []byte("void f(){}"), 0o644))

	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case ev := <-w.Events():
			if ev.Path == file {
				return
			}
		case <-tick.C:
			_ = os.WriteFile(file, []byte("void f(){}"), 0o644)
		case <-deadline:
			t.Fatal("no event for file in newly created directory")
		}
	}
}

func TestWatcherSkipsIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vendor"), 0o755))

	w, err := NewWatcher(nopLogger{})
	require.NoError(t, err)
	defer w.Stop() //nolint:errcheck // Test cleanup

	var dirs []string
	w.ignores = []string{"vendor"}
	for d := range w.directories(root) {
		dirs = append(dirs, d)
	}
	assert.Equal(t, []string{root}, dirs)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	var (
		mu      sync.Mutex
		batches [][]string
	)
	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		sort.Strings(paths)
		mu.Lock()
		batches = append(batches, paths)
		mu.Unlock()
	})

	d.Add("a.c")
	d.Add("b.c")
	d.Add("a.c")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(batches) == 1 && slices.Equal(batches[0], []string{"a.c", "b.c"})
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDebouncerFlushDeliversSynchronously(t *testing.T) {
	var (
		mu      sync.Mutex
		batches [][]string
	)
	d := NewDebouncer(time.Hour, func(paths []string) {
		mu.Lock()
		batches = append(batches, paths)
		mu.Unlock()
	})

	d.Add("a.c")
	d.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"a.c"}, batches[0])
}

func TestDebouncerFlushWithNothingPending(t *testing.T) {
	called := false
	d := NewDebouncer(time.Hour, func([]string) { called = true })
	d.Flush()
	assert.False(t, called)
}
