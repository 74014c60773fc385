// Package config loads the optional per-project configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up under the project
// root.
const DefaultFilename = "mason.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the project root. A missing file yields
// defaults; a malformed file is an error.
func (l *FileConfigLoader) Load(root string) (*domain.ProjectConfig, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	path := filepath.Join(root, name)

	data, err := os.ReadFile(path) //nolint:gosec // Path is under the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.ProjectConfig{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var mf masonfile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return &domain.ProjectConfig{
		Flags:  mf.Flags,
		Output: mf.Output,
		Ignore: mf.Ignore,
	}, nil
}
