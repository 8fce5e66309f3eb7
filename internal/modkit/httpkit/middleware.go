package httpkit

import (
	"net/http"
	"time"

	pmw "rangelens/internal/platform/net/middleware"
)

// CommonStack is the default middleware stack for API scopes: request ids,
// panic recovery, access logging and a request deadline. Order matters;
// RecoverJSON must sit inside RequestID so panics still carry the id.
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		pmw.RequestID(),
		pmw.RealIP(),
		pmw.LogContext,
		pmw.RecoverJSON,
		pmw.AccessLog,
		pmw.Timeout(60 * time.Second),
	}
}

// PublicStack adds permissive CORS on top of CommonStack for browser-facing scopes
func PublicStack(origins ...string) []func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return append(CommonStack(), pmw.CORS(pmw.CORSOptions{AllowedOrigins: origins}))
}
