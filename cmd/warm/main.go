// Command warm makes sure the cached Pokédex catalog is fresh, fetching it
// from PokéAPI when the entry is missing or older than catalog.max_age. It
// is meant to run from an external cron job ahead of traffic, against a
// shared backend (redis, postgres or sqlite).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/pokedex-pocket/internal/app"
	"github.com/heartmarshall/pokedex-pocket/internal/config"
	"github.com/heartmarshall/pokedex-pocket/internal/viewstate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := checkBackend(cfg.Cache); err != nil {
		logger.Error("catalog warm refused", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	px, err := app.NewPokedex(ctx, cfg, logger)
	if err != nil {
		logger.Error("open pokedex", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer px.Close()

	start := time.Now()
	page, err := px.Service.GetList(ctx, 0, viewstate.CatalogPageSize)
	if err != nil {
		logger.Error("catalog warm failed",
			slog.String("error", err.Error()),
			slog.String("cache_backend", cfg.Cache.BackendName()),
		)
		px.Close()
		os.Exit(1)
	}

	logger.Info("catalog warm completed",
		slog.Int("count", page.Count),
		slog.Int("entries", len(page.Results)),
		slog.Duration("took", time.Since(start)),
	)
}

// checkBackend rejects the in-process memory store: whatever this process
// writes there is gone when it exits.
func checkBackend(cfg config.CacheConfig) error {
	if cfg.Backend == config.CacheBackendMemory {
		return fmt.Errorf("cache backend %q does not outlive the process; set CACHE_BACKEND to redis, postgres or sqlite", cfg.Backend)
	}
	return nil
}
