package ports

import "context"

// RuntimeLocator finds interpreters that can seed an isolated environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type RuntimeLocator interface {
	// Host returns the interpreter of the host runtime.
	Host(ctx context.Context) (string, error)

	// HostVersion reports the full version of the host runtime, e.g. "3.12.4".
	HostVersion(ctx context.Context) (string, error)

	// Locate returns the interpreter for the given runtime version (e.g. "3.11").
	// It fails with domain.ErrEnvironmentUnavailable if no such runtime is installed.
	Locate(ctx context.Context, version string) (string, error)

	// VirtualenvVersion reports the "major.minor" version of the active virtualenv, if any.
	// It returns an empty string when no virtualenv is active.
	VirtualenvVersion(ctx context.Context) (string, error)

	// Virtualenv returns the interpreter of the active virtualenv.
	// It fails with domain.ErrNoVirtualenv when none is active.
	Virtualenv(ctx context.Context) (string, error)
}
