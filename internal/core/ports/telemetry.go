package ports

// Telemetry records build progress as a set of vertices, one per unit of
// work (a compile or a link).
type Telemetry interface {
	// Record starts a new vertex with a human-readable name.
	Record(name string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Complete marks the vertex finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as skipped because it was up to date.
	Cached()
}
