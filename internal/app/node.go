package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vulcan/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/vulcan/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/vulcan/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/vulcan/internal/adapters/lockfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/vulcan/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/vulcan/internal/adapters/pip"                //nolint:depguard // Wired in app layer
	"go.trai.ch/vulcan/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/vulcan/internal/adapters/venv"               //nolint:depguard // Wired in app layer
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/vulcan/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			venv.LocatorNodeID,
			resolver.NodeID,
			lockfile.CodecNodeID,
			lockfile.StoreNodeID,
			cas.NodeID,
			fs.HasherNodeID,
			pip.PackageInstallerNodeID,
			config.EditorNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.RuntimeLocator](ctx)
	if err != nil {
		return nil, err
	}

	lockResolver, err := graft.Dep[ports.LockResolver](ctx)
	if err != nil {
		return nil, err
	}

	codec, err := graft.Dep[ports.LockfileCodec](ctx)
	if err != nil {
		return nil, err
	}

	lockfiles, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}

	states, err := graft.Dep[ports.LockStateStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.PackageInstaller](ctx)
	if err != nil {
		return nil, err
	}

	editor, err := graft.Dep[ports.ProjectEditor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, locator, lockResolver, codec, lockfiles, states, hasher, installer, editor, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
