package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI scopes a subrouter under /api/{version}, applies the given
// middleware stack, then invokes mount to register module routes there.
//
// example:
//
//	httpkit.MountAPIV1(r, httpkit.PublicStack(), func(api httpkit.Router) {
//	  comparison.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	ver := strings.TrimPrefix(version, "/")
	r.Route("/api/"+ver, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is a convenience for MountAPI with version v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
