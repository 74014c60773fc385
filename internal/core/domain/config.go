package domain

// ProjectConfig is the optional per-project configuration. Absence of a
// config file means all defaults; this is deliberately not a build language,
// just knobs for the toolchain invocation.
type ProjectConfig struct {
	// Flags are extra toolchain flags, order-significant. They are part
	// of the cache's configuration signature.
	Flags []string
	// Output overrides the executable name. Empty means the project root
	// directory name.
	Output string
	// Ignore lists directory names excluded from scanning and watching.
	Ignore []string
}
