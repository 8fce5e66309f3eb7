// @title         Rangelens API
// @version       0.1.0
// @description   Comparison label resolution for temporal-range filters

package main

import (
	"context"

	"rangelens/internal/adapters/chrono"
	"rangelens/internal/platform/config"
	"rangelens/internal/platform/logger"
	phttp "rangelens/internal/platform/net/http"

	"rangelens/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// chrono client (reads CHRONO_URL etc)
	cl := chrono.New(chrono.FromConfig(root))

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Chrono:         cl,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
