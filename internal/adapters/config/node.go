package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vulcan/internal/adapters/logger"
	"go.trai.ch/vulcan/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the project loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// EditorNodeID is the unique identifier for the project editor Graft node.
	EditorNodeID graft.ID = "adapter.config_editor"
)

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectEditor]{
		ID:        EditorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectEditor, error) {
			return NewEditor(), nil
		},
	})
}
