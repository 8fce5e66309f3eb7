package middleware

import (
	"net/http"

	"rangelens/internal/platform/logger"
	pnet "rangelens/internal/platform/net"
)

// LogContext copies the request id into the logger context so downstream
// logs carry it. Mount after RequestID.
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
