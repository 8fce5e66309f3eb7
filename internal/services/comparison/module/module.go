// Package module wires comparison into the API using modkit
package module

import (
	"net/http"

	modkit "rangelens/internal/modkit"
	"rangelens/internal/modkit/httpkit"
	str "rangelens/internal/platform/strings"
	dom "rangelens/internal/services/comparison/domain"
	comphttp "rangelens/internal/services/comparison/http"
	compsvc "rangelens/internal/services/comparison/service"
)

// Ports exposes the comparison service to other modules. Tracker is the
// stateful companion for callers that rederive labels as inputs change
type Ports struct {
	Service dom.ServicePort
	Tracker *compsvc.Tracker
}

// Module implements the comparison module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dom.ServicePort
}

// New constructs the comparison module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("comparison"),
		modkit.WithPrefix("/comparison"),
	}, opts...)...)

	svc := compsvc.New(deps.Chrono, compsvc.Config{
		MaxConcurrent: deps.Cfg.Prefix("COMPARISON_").MayInt("MAX_CONCURRENT", 4),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc, Tracker: compsvc.NewTracker(svc)}

	external := b.Register
	m.register = func(r httpkit.Router) {
		comphttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "comparison") }

// Ports returns the comparison port set
func (m *Module) Ports() any { return m.ports }
