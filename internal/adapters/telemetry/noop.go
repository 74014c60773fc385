package telemetry

import "go.trai.ch/mason/internal/core/ports"

var _ ports.Telemetry = (*Noop)(nil)

// Noop is a Telemetry implementation that records nothing.
type Noop struct{}

// Record returns a vertex that ignores every call.
func (Noop) Record(string) ports.Vertex { return noopVertex{} }

// Close does nothing.
func (Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Complete(error) {}
func (noopVertex) Cached()        {}
