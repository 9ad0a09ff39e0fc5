package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/npmbridge/internal/adapters/config"
	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the directory walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// RemoverNodeID is the unique identifier for the tree remover Graft node.
	RemoverNodeID graft.ID = "adapter.fs.remover"
	// LinkerNodeID is the unique identifier for the binary linker Graft node.
	LinkerNodeID graft.ID = "adapter.fs.linker"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.TreeRemover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeRemover, error) {
			return NewRemover(), nil
		},
	})

	graft.Register(graft.Node[ports.BinaryLinker]{
		ID:        LinkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.BinaryLinker, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinker(walker, cfg.LinkConcurrency), nil
		},
	})
}
