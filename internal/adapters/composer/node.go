package composer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/npmbridge/internal/core/ports"
)

// NodeID is the unique identifier for the Composer package source Graft node.
const NodeID graft.ID = "adapter.composer"

func init() {
	graft.Register(graft.Node[ports.PackageSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageSource, error) {
			return NewSource(), nil
		},
	})
}
