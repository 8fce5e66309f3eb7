// Package api provides the HTTP API for the application
package api

import (
	"rangelens/internal/adapters/chrono"
	"rangelens/internal/platform/config"
	"rangelens/internal/platform/logger"
	phttp "rangelens/internal/platform/net/http"
	pmw "rangelens/internal/platform/net/middleware"

	"rangelens/internal/modkit"
	"rangelens/internal/modkit/httpkit"
	"rangelens/internal/modkit/module"
	"rangelens/internal/modkit/swaggerkit"

	comparisonmod "rangelens/internal/services/comparison/module"

	metamod "rangelens/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Chrono         *chrono.Client
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// liveness ping outside the versioned API
	r.Use(pmw.Heartbeat("/ping"))

	// shared deps for modules
	deps := modkit.Deps{
		Log:    opt.Logger,
		Cfg:    opt.Config,
		Chrono: opt.Chrono,
	}

	mods := []module.Module{
		metamod.New(deps),
		comparisonmod.New(deps),
	}

	// versioned API with the browser-facing middleware stack
	httpkit.MountAPIV1(r, httpkit.PublicStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
