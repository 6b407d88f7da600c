package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader defines the interface for loading the project settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings for the project rooted at cwd.
	//
	// An empty path selects the default config file, which may be absent.
	// A non-empty path must exist; relative paths are resolved against cwd.
	Load(cwd, path string) (domain.Settings, error)
}
