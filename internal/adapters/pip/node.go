package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vulcan/internal/adapters/shell"
	"go.trai.ch/vulcan/internal/adapters/telemetry/progrock"
	"go.trai.ch/vulcan/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the installer Graft node.
	NodeID graft.ID = "adapter.pip"
	// PackageInstallerNodeID is the unique identifier for the single-package installer Graft node.
	PackageInstallerNodeID graft.ID = "adapter.pip.package"
)

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			return newInstallerFromDeps(ctx)
		},
	})

	graft.Register(graft.Node[ports.PackageInstaller]{
		ID:        PackageInstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.PackageInstaller, error) {
			return newInstallerFromDeps(ctx)
		},
	})
}

func newInstallerFromDeps(ctx context.Context) (*Installer, error) {
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewInstaller(executor, telemetry), nil
}
