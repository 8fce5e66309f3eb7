// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"

	phttp "rangelens/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount exposes the Swagger UI at /api/docs when enabled. The doc.json it
// loads comes from serveDocJSON.
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("rangelens"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
