package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vulcan/internal/adapters/logger"
	"go.trai.ch/vulcan/internal/adapters/shell"
	"go.trai.ch/vulcan/internal/core/ports"
)

const (
	// LocatorNodeID is the unique identifier for the runtime locator Graft node.
	LocatorNodeID graft.ID = "adapter.venv.locator"
	// ProviderNodeID is the unique identifier for the environment provider Graft node.
	ProviderNodeID graft.ID = "adapter.venv.provider"
)

func init() {
	graft.Register(graft.Node[ports.RuntimeLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.RuntimeLocator, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(executor), nil
		},
	})

	graft.Register(graft.Node[ports.EnvironmentProvider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, LocatorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentProvider, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.RuntimeLocator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewProvider(executor, locator, log), nil
		},
	})
}
