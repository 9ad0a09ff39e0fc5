package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/npmbridge/internal/adapters/config"
	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
)

// NodeID is the unique identifier for the lock store Graft node.
const NodeID graft.ID = "adapter.lock_store"

func init() {
	graft.Register(graft.Node[ports.LockStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.LockStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.LockFile), nil
		},
	})
}
