package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/npmbridge/internal/adapters/composer"           //nolint:depguard // Wired in app layer
	"go.trai.ch/npmbridge/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/npmbridge/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/npmbridge/internal/adapters/lockfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/npmbridge/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/npmbridge/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
	"go.trai.ch/npmbridge/internal/engine/installer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			composer.NodeID,
			installer.NodeID,
			lockfile.NodeID,
			fs.LinkerNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

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
	source, err := graft.Dep[ports.PackageSource](ctx)
	if err != nil {
		return nil, err
	}

	inst, err := graft.Dep[*installer.Installer](ctx)
	if err != nil {
		return nil, err
	}

	locks, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}

	linker, err := graft.Dep[ports.BinaryLinker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return New(source, inst, locks, linker, log, cfg), nil
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
