// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vulcan/internal/adapters/cas"
	_ "go.trai.ch/vulcan/internal/adapters/config"
	_ "go.trai.ch/vulcan/internal/adapters/fs"
	_ "go.trai.ch/vulcan/internal/adapters/lockfile"
	_ "go.trai.ch/vulcan/internal/adapters/logger"
	_ "go.trai.ch/vulcan/internal/adapters/pip"
	_ "go.trai.ch/vulcan/internal/adapters/shell"
	_ "go.trai.ch/vulcan/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/vulcan/internal/adapters/venv"
	// Register app and engine nodes.
	_ "go.trai.ch/vulcan/internal/app"
	_ "go.trai.ch/vulcan/internal/engine/resolver"
)
