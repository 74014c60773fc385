package domain

// Profile selects the build flavor. It decides the optimization flag passed
// to the compiler and the output subdirectory.
type Profile int

const (
	// ProfileDebug compiles with debug symbols.
	ProfileDebug Profile = iota
	// ProfileRelease compiles with optimizations.
	ProfileRelease
)

// Dir returns the output subdirectory name for the profile.
func (p Profile) Dir() string {
	if p == ProfileRelease {
		return "release"
	}
	return "debug"
}

// CompileFlag returns the per-profile compiler flag: debug symbols for
// debug builds, optimization for release builds.
func (p Profile) CompileFlag() string {
	if p == ProfileRelease {
		return "-O2"
	}
	return "-g"
}

// String returns the profile name.
func (p Profile) String() string {
	return p.Dir()
}
