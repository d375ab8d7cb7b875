package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vulcan/internal/adapters/logger"
	"go.trai.ch/vulcan/internal/adapters/pip"
	"go.trai.ch/vulcan/internal/adapters/telemetry/progrock"
	"go.trai.ch/vulcan/internal/adapters/venv"
	"go.trai.ch/vulcan/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.LockResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{venv.ProviderNodeID, pip.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.LockResolver, error) {
			provider, err := graft.Dep[ports.EnvironmentProvider](ctx)
			if err != nil {
				return nil, err
			}

			installer, err := graft.Dep[ports.Installer](ctx)
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

			return New(provider, installer, log, telemetry), nil
		},
	})
}
