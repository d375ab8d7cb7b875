package ports

import "go.trai.ch/vulcan/internal/core/domain"

// ProjectLoader loads the project descriptor.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project descriptor found in dir.
	Load(dir string) (domain.Project, error)
}

// ProjectEditor modifies the project descriptor in place.
type ProjectEditor interface {
	// AddDependency sets name to specifier in the descriptor's dependency table of
	// the project in dir, replacing an existing entry for the same package.
	// It returns the path of the edited file.
	AddDependency(dir, name, specifier string) (string, error)
}
