// Package module defines the minimal contract for a modkit module plus a
// tiny registry for cross-module port lookup during bootstrap
package module

import (
	phttp "rangelens/internal/platform/net/http"
)

// Module is the surface the API composition root drives. Keep it tiny so
// modules stay decoupled.
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)

	// Ports returns a module-specific port set for cross wiring, or nil
	Ports() any

	// Name returns the module name
	Name() string
}
