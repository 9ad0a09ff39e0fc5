package npm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/npmbridge/internal/adapters/config"
	"go.trai.ch/npmbridge/internal/adapters/logger"
	"go.trai.ch/npmbridge/internal/adapters/shell"
	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
)

const (
	// ManagerNodeID is the unique identifier for the npm package manager Graft node.
	ManagerNodeID graft.ID = "adapter.npm.manager"
	// ManifestNodeID is the unique identifier for the manifest writer Graft node.
	ManifestNodeID graft.ID = "adapter.npm.manifest"
	// MarkerNodeID is the unique identifier for the install marker Graft node.
	MarkerNodeID graft.ID = "adapter.npm.marker"
)

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(executor, cfg.NPM, cfg.Environment), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestWriter]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestWriter, error) {
			return NewManifestWriter(), nil
		},
	})

	graft.Register(graft.Node[ports.MarkerStore]{
		ID:        MarkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.MarkerStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMarkerStore(log), nil
		},
	})
}
