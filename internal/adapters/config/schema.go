package config

// masonfile is the structure of the mason.yaml configuration file.
type masonfile struct {
	// Flags are extra toolchain flags, order-significant.
	Flags []string `yaml:"flags"`
	// Output overrides the executable name.
	Output string `yaml:"output"`
	// Ignore lists directory names excluded from scanning.
	Ignore []string `yaml:"ignore"`
}
