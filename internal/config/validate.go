package config

import (
	"fmt"
	"net/url"
	"slices"
)

var cacheBackends = []string{CacheBackendMemory, CacheBackendRedis, CacheBackendPostgres, CacheBackendSQLite}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBatchIDs <= 0 {
		return fmt.Errorf("server.max_batch_ids must be > 0 (got %d)", c.Server.MaxBatchIDs)
	}
	if c.Server.BatchWorkers <= 0 {
		return fmt.Errorf("server.batch_workers must be > 0 (got %d)", c.Server.BatchWorkers)
	}

	if err := c.PokeAPI.validate(); err != nil {
		return fmt.Errorf("pokeapi: %w", err)
	}

	if c.Catalog.MaxAge <= 0 {
		return fmt.Errorf("catalog.max_age must be > 0 (got %v)", c.Catalog.MaxAge)
	}
	if c.Catalog.DefaultPageSize <= 0 {
		return fmt.Errorf("catalog.default_page_size must be > 0 (got %d)", c.Catalog.DefaultPageSize)
	}

	backend := c.Cache.BackendName()
	if !slices.Contains(cacheBackends, backend) {
		return fmt.Errorf("cache.backend must be one of %v (got %q)", cacheBackends, c.Cache.Backend)
	}
	switch backend {
	case CacheBackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("redis.url is required for the redis cache backend")
		}
	case CacheBackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres cache backend")
		}
	case CacheBackendSQLite:
		if c.Cache.SQLitePath == "" {
			return fmt.Errorf("cache.sqlite_path is required for the sqlite cache backend")
		}
	}

	if c.ViewState.SearchDebounce < 0 {
		return fmt.Errorf("viewstate.search_debounce must be >= 0 (got %v)", c.ViewState.SearchDebounce)
	}

	return nil
}

func (p PokeAPIConfig) validate() error {
	u, err := url.Parse(p.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", p.BaseURL)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	return nil
}
