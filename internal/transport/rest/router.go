package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/pokedex-pocket/internal/config"
	"github.com/heartmarshall/pokedex-pocket/internal/transport/middleware"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	Logger  *slog.Logger
	Pokemon *PokemonHandler
	Health  *HealthHandler
	Metrics http.Handler
	CORS    config.CORSConfig
}

// NewRouter mounts the API, probes and metrics. Probes and metrics skip the
// request logger.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
	))

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}

	r.Route("/api/v1/pokemon", func(r chi.Router) {
		r.Use(
			middleware.Logger(deps.Logger),
			middleware.CORS(deps.CORS),
		)
		r.Get("/", deps.Pokemon.List)
		r.Get("/search", deps.Pokemon.Search)
		r.Get("/lookup", deps.Pokemon.Lookup)
		r.Get("/batch", deps.Pokemon.Batch)
		r.Get("/sprite-styles", deps.Pokemon.SpriteStyles)
		r.Get("/{id}", deps.Pokemon.Get)
		r.Get("/{id}/sprite", deps.Pokemon.Sprite)
	})

	return r
}
