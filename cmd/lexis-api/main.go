// @title         Lexis API
// @version       0.1.0
// @description   String analysis, storage, and filtering endpoints

package main

import (
	"context"

	"lexis/internal/platform/config"
	"lexis/internal/platform/logger"
	phttp "lexis/internal/platform/net/http"
	"lexis/internal/platform/store"

	"lexis/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	memCfg := root.Prefix("SERVICE_MEMSTORE_") // memCfg lives under SERVICE_MEMSTORE_*

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// open the platform store (in-memory keyed backend)
	st, err := store.Open(
		context.Background(),
		store.Config{
			Mem: store.MemConfig{
				Enabled:         true,
				InitialCapacity: memCfg.MayInt("CAPACITY", 0),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
