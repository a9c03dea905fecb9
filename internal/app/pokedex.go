package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/provider/pokeapi"
	"github.com/heartmarshall/pokedex-pocket/internal/config"
	"github.com/heartmarshall/pokedex-pocket/internal/metrics"
	"github.com/heartmarshall/pokedex-pocket/internal/repository/pokemon"
	"github.com/heartmarshall/pokedex-pocket/internal/service/pokedex"
)

// Pokedex is the assembled application core shared by the server and the
// CLI.
type Pokedex struct {
	Service *pokedex.Service
	Cache   CacheStore
	Metrics *metrics.Metrics
}

// NewPokedex opens the configured cache and wires client, repositories and
// service. Close releases the cache.
func NewPokedex(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Pokedex, error) {
	store, err := OpenCache(ctx, cfg, nil, logger)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout, m, logger)

	svc := pokedex.NewService(
		logger,
		pokemon.NewListRepository(logger, client, store, cfg.Catalog.MaxAge, m),
		pokemon.NewDetailRepository(logger, client),
		cfg.Catalog.DefaultPageSize,
	)

	logger.InfoContext(ctx, "pokedex ready",
		slog.String("cache_backend", cfg.Cache.BackendName()),
		slog.String("pokeapi", cfg.PokeAPI.BaseURL),
		slog.Duration("catalog_max_age", cfg.Catalog.MaxAge),
	)

	return &Pokedex{Service: svc, Cache: store, Metrics: m}, nil
}

func (p *Pokedex) Close() error {
	return p.Cache.Close()
}
