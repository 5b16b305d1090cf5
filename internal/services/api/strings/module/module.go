// Package module wires strings into the API using modkit
package module

import (
	"net/http"

	modkit "lexis/internal/modkit"
	"lexis/internal/modkit/httpkit"
	str "lexis/internal/platform/strings"
	stringshttp "lexis/internal/services/api/strings/http"
	stringsrepo "lexis/internal/services/api/strings/repo"
	stringssvc "lexis/internal/services/api/strings/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc stringssvc.Service
}

// New constructs a strings module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("strings"), modkit.WithPrefix("/strings")}, opts...)...)

	repo := stringsrepo.NewMem()
	svc := stringssvc.New(deps.Mem, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Strings: adaptStringsPort{svc: svc}, Counter: adaptStringsPort{svc: svc}}

	external := b.Register
	m.register = func(r httpkit.Router) {
		stringshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
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
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
