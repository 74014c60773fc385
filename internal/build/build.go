// Package build holds information stamped in at build time.
package build

// Version is the application version, overridable via -ldflags at release
// time. Development builds report "dev".
var Version = "dev"
