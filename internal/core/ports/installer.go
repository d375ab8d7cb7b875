package ports

import (
	"context"

	"go.trai.ch/vulcan/internal/core/domain"
)

// Installer installs requirement sets into scratch directories and reports what landed there.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// InstallAndFreeze installs reqs into targetDir using env's installer and returns the
	// pinned packages found under targetDir afterwards.
	//
	// An empty reqs yields an empty set without running the installer.
	// A non-zero installer exit is reported as domain.ErrInstallConflict carrying its output.
	// Cancellation is reported with the context's error in the chain.
	InstallAndFreeze(
		ctx context.Context,
		env domain.Environment,
		targetDir string,
		reqs []domain.Requirement,
	) (domain.FrozenSet, error)
}

// PackageInstaller installs a single requirement into an existing interpreter's environment.
type PackageInstaller interface {
	// InstallPackage installs req with python's installer and returns every package
	// installed in that environment afterwards.
	InstallPackage(ctx context.Context, python string, req domain.Requirement) (domain.FrozenSet, error)
}
