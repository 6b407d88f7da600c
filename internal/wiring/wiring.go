// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kiln/internal/adapters/cmake"
	_ "go.trai.ch/kiln/internal/adapters/config"
	_ "go.trai.ch/kiln/internal/adapters/fs"
	_ "go.trai.ch/kiln/internal/adapters/linear"
	_ "go.trai.ch/kiln/internal/adapters/logger"
	_ "go.trai.ch/kiln/internal/adapters/shell"
	_ "go.trai.ch/kiln/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/kiln/internal/app"
)
