package domain

import "path/filepath"

// Driver is the closed set of toolchain front-ends the build can invoke.
// It is resolved once per file from the extension rather than branching on
// strings at every call site.
type Driver int

const (
	// DriverC is the C compiler front-end.
	DriverC Driver = iota
	// DriverCPP is the C++ compiler front-end.
	DriverCPP
)

// Command returns the toolchain binary for the driver.
func (d Driver) Command() string {
	if d == DriverC {
		return "gcc"
	}
	return "g++"
}

// String returns the toolchain binary name.
func (d Driver) String() string {
	return d.Command()
}

var (
	sourceExts = map[string]struct{}{
		".c": {}, ".cpp": {}, ".cc": {}, ".cxx": {},
	}
	headerExts = map[string]struct{}{
		".h": {}, ".hpp": {},
	}
)

// IsSource reports whether path names a compilable C/C++ source file.
func IsSource(path string) bool {
	_, ok := sourceExts[filepath.Ext(path)]
	return ok
}

// IsHeader reports whether path names a C/C++ header file.
func IsHeader(path string) bool {
	_, ok := headerExts[filepath.Ext(path)]
	return ok
}

// IsTracked reports whether path has one of the recognized C/C++ source or
// header extensions.
func IsTracked(path string) bool {
	return IsSource(path) || IsHeader(path)
}

// DriverFor selects the compiler for a source file: plain C sources get the
// C driver, everything else in the C++ family gets the C++ driver.
func DriverFor(path string) Driver {
	if filepath.Ext(path) == ".c" {
		return DriverC
	}
	return DriverCPP
}
