package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/npmbridge/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/npmbridge/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/npmbridge/internal/adapters/npm"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/npmbridge/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/npmbridge/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			npm.ManifestNodeID,
			npm.MarkerNodeID,
			npm.ManagerNodeID,
			fs.RemoverNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			manifests, err := graft.Dep[ports.ManifestWriter](ctx)
			if err != nil {
				return nil, err
			}

			markers, err := graft.Dep[ports.MarkerStore](ctx)
			if err != nil {
				return nil, err
			}

			manager, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			remover, err := graft.Dep[ports.TreeRemover](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manifests, markers, manager, remover, telemetry, log), nil
		},
	})
}
