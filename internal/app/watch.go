package app

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch starts the interactive watch loop: a background listener queues
// filesystem changes while a single-threaded command loop reads build/run
// commands from the prompt. Queued changes are informational only; a build
// happens when a command asks for one, and never concurrently with another.
func (a *App) Watch(ctx context.Context, root string) error {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve project root")
	}

	cfg, err := a.configLoader.Load(rootAbs)
	if err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, rootAbs, cfg.Ignore); err != nil {
		return zerr.Wrap(err, "failed to start filesystem watcher")
	}
	defer a.watcher.Stop() //nolint:errcheck // Best effort close on exit

	a.logger.Info("watching " + rootAbs)
	fmt.Fprintln(a.out, "commands: build, run, help, exit (--release selects the release profile)")

	changed := make(map[string]struct{})
	input := bufio.NewScanner(a.in)

	for {
		a.drainEvents(changed)
		if len(changed) > 0 {
			fmt.Fprintf(a.out, "%d files changed since last build\n", len(changed))
		}
		fmt.Fprint(a.out, "mason> ")

		if !input.Scan() {
			fmt.Fprintln(a.out, "shutting down")
			return input.Err()
		}

		fields := strings.Fields(input.Text())
		if len(fields) == 0 {
			continue
		}

		profile := domain.ProfileDebug
		if slices.Contains(fields[1:], "--release") {
			profile = domain.ProfileRelease
		}
		opts := BuildOptions{Root: rootAbs, Profile: profile}

		switch fields[0] {
		case "exit", "close":
			fmt.Fprintln(a.out, "shutting down")
			return nil
		case "help":
			fmt.Fprintln(a.out, "available commands: build, run, help, exit")
			fmt.Fprintln(a.out, "flags: --release")
		case "build":
			if _, err := a.Build(ctx, opts); err != nil {
				a.logger.Error(err)
				continue
			}
			clear(changed)
		case "run":
			if err := a.Run(ctx, opts); err != nil {
				a.logger.Error(err)
				continue
			}
			clear(changed)
		case "watch":
			fmt.Fprintln(a.out, "already in watch mode")
		default:
			fmt.Fprintf(a.out, "unknown command %q, try help\n", fields[0])
		}
	}
}

// drainEvents moves every queued watcher event into the changed set without
// blocking.
func (a *App) drainEvents(changed map[string]struct{}) {
	for {
		select {
		case ev, ok := <-a.watcher.Events():
			if !ok {
				return
			}
			changed[ev.Path] = struct{}{}
		default:
			return
		}
	}
}
