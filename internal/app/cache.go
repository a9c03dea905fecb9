package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache"
	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache/memory"
	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache/postgres"
	rediscache "github.com/heartmarshall/pokedex-pocket/internal/adapter/cache/redis"
	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache/sqlite"
	"github.com/heartmarshall/pokedex-pocket/internal/config"
)

// CacheStore is the catalog cache as the rest of the app sees it.
type CacheStore interface {
	IsValid(ctx context.Context, key string, maxAge time.Duration) (bool, error)
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ CacheStore = (*memory.Store)(nil)
	_ CacheStore = (*rediscache.Store)(nil)
	_ CacheStore = (*postgres.Store)(nil)
	_ CacheStore = (*sqlite.Store)(nil)
)

// OpenCache connects the backend selected by cfg.Cache.Backend. The postgres
// backend applies migrations first when database.auto_migrate is set.
func OpenCache(ctx context.Context, cfg *config.Config, clock cache.Clock, logger *slog.Logger) (CacheStore, error) {
	backend := cfg.Cache.BackendName()

	switch backend {
	case config.CacheBackendMemory:
		return memory.New(clock, logger), nil

	case config.CacheBackendSQLite:
		store, err := sqlite.Open(ctx, cfg.Cache.SQLitePath, clock, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite cache: %w", err)
		}
		return store, nil

	case config.CacheBackendRedis:
		client, err := rediscache.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return rediscache.New(client, cfg.Redis.KeyPrefix, cfg.Redis.Retention, clock, logger), nil

	case config.CacheBackendPostgres:
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
				return nil, fmt.Errorf("migrate cache schema: %w", err)
			}
			logger.InfoContext(ctx, "cache schema migrated")
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return postgres.New(pool, clock, logger), nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
