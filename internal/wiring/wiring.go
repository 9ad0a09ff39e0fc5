// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/npmbridge/internal/adapters/composer"
	_ "go.trai.ch/npmbridge/internal/adapters/config"
	_ "go.trai.ch/npmbridge/internal/adapters/fs"
	_ "go.trai.ch/npmbridge/internal/adapters/lockfile"
	_ "go.trai.ch/npmbridge/internal/adapters/logger"
	_ "go.trai.ch/npmbridge/internal/adapters/npm"
	_ "go.trai.ch/npmbridge/internal/adapters/shell"
	_ "go.trai.ch/npmbridge/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/npmbridge/internal/app"
	_ "go.trai.ch/npmbridge/internal/engine/installer"
)
