package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vulcan/internal/core/ports"
)

const (
	// CodecNodeID is the unique identifier for the lockfile codec Graft node.
	CodecNodeID graft.ID = "adapter.lockfile.codec"
	// StoreNodeID is the unique identifier for the lockfile store Graft node.
	StoreNodeID graft.ID = "adapter.lockfile.store"
)

func init() {
	graft.Register(graft.Node[ports.LockfileCodec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileCodec, error) {
			return NewCodec(), nil
		},
	})

	graft.Register(graft.Node[ports.LockfileStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileStore, error) {
			return NewStore(), nil
		},
	})
}
