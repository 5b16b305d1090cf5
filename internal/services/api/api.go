// Package api provides the HTTP API for the application
package api

import (
	"lexis/internal/platform/config"
	"lexis/internal/platform/logger"
	phttp "lexis/internal/platform/net/http"
	"lexis/internal/platform/store"

	"lexis/internal/modkit"
	"lexis/internal/modkit/httpkit"
	"lexis/internal/modkit/module"
	"lexis/internal/modkit/swaggerkit"

	metamod "lexis/internal/services/api/meta/module"
	stringsdom "lexis/internal/services/api/strings/domain"
	stringsmod "lexis/internal/services/api/strings/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		Mem: opt.Store.Mem,
	}

	// Construct strings first and extract its counter port for meta health
	strings := stringsmod.New(deps)
	counter := module.MustPortsOf[stringsdom.CounterPort](strings)

	meta := metamod.New(
		deps,
		modkit.WithPorts(metamod.Ports{
			Counter: counter,
		}),
	)

	mods := []module.Module{
		meta,
		strings,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
