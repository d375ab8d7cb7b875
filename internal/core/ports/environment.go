package ports

import (
	"context"

	"go.trai.ch/vulcan/internal/core/domain"
)

// EnvironmentProvider creates disposable environments used as a resolution oracle.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentProvider interface {
	// Create builds an isolated environment for the given runtime version
	// (empty selects the host runtime) with an up-to-date package installer.
	//
	// The returned release function removes every file the environment owns and must
	// be called once all work against the environment has finished. If Create fails,
	// it has already removed whatever it created.
	Create(ctx context.Context, runtimeVersion string) (env domain.Environment, release func() error, err error)
}
