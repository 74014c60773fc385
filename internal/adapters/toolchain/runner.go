// Package toolchain runs the external compiler and linker processes.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolRunner = (*Runner)(nil)

// Runner implements ports.ToolRunner using os/exec. Compiler and linker
// output is streamed line-by-line into the logger. Calls block for the full
// duration of the external process; there is no cancellation of a process
// once started and no timeout.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// QueryDeps invokes the dependency-listing mode (-MM) of the driver for the
// source file and returns raw stdout. -MM lists the source's headers without
// producing object output. A non-zero exit maps to domain.ErrDepQuery so the
// scanner can treat the source as having no discovered dependencies.
func (r *Runner) QueryDeps(ctx context.Context, driver domain.Driver, flags []string, source string) (string, error) {
	args := make([]string, 0, len(flags)+2)
	args = append(args, "-MM")
	args = append(args, flags...)
	args = append(args, source)

	cmd := exec.CommandContext(ctx, driver.Command(), args...) //nolint:gosec // Toolchain binary from a closed set

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: r.logger, level: "warn"}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", zerr.With(zerr.With(
				domain.ErrDepQuery, "file", source), "exit_code", exitErr.ExitCode())
		}
		return "", zerr.With(zerr.Wrap(err, "failed to run dependency query"), "file", source)
	}

	return stdout.String(), nil
}

// Compile produces an object file with `-c source -o object` plus the given
// flags.
func (r *Runner) Compile(ctx context.Context, driver domain.Driver, flags []string, source, object string) error {
	args := make([]string, 0, len(flags)+4)
	args = append(args, "-c", source, "-o", object)
	args = append(args, flags...)

	if err := r.run(ctx, driver, args); err != nil {
		return zerr.With(err, "file", source)
	}
	return nil
}

// Link assembles the full object list into a single executable. There is no
// incremental linking; every invocation passes every object.
func (r *Runner) Link(ctx context.Context, driver domain.Driver, objects []string, output string) error {
	args := make([]string, 0, len(objects)+2)
	args = append(args, objects...)
	args = append(args, "-o", output)

	if err := r.run(ctx, driver, args); err != nil {
		return zerr.With(err, "output", output)
	}
	return nil
}

func (r *Runner) run(ctx context.Context, driver domain.Driver, args []string) error {
	cmd := exec.CommandContext(ctx, driver.Command(), args...) //nolint:gosec // Toolchain binary from a closed set
	cmd.Stdout = &logWriter{logger: r.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(zerr.Wrap(err, "toolchain exited non-zero"), "exit_code", exitErr.ExitCode())
		}
		return zerr.Wrap(err, "failed to run toolchain")
	}
	return nil
}

// logWriter forwards subprocess output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	for _, line := range strings.Split(msg, "\n") {
		switch w.level {
		case "error":
			w.logger.Error(zerr.New(line))
		case "warn":
			w.logger.Warn(line)
		default:
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
