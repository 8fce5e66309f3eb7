package modkit

import (
	"rangelens/internal/adapters/chrono"
	"rangelens/internal/platform/config"
	"rangelens/internal/platform/logger"
)

// Deps is the shared dependency bundle handed to module constructors.
// Keep it to process-wide singletons; per-module wiring goes in options.
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	Chrono *chrono.Client
}
