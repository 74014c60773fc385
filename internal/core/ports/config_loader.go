package ports

import "go.trai.ch/mason/internal/core/domain"

// ConfigLoader reads the optional project configuration from the project
// root. A missing config file is not an error and yields defaults.
type ConfigLoader interface {
	Load(root string) (*domain.ProjectConfig, error)
}
