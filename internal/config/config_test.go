package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  max_batch_ids: 25

pokeapi:
  base_url: "http://localhost:4000/api/v2"
  timeout: "3s"

catalog:
  max_age: "1h"
  default_page_size: 40

cache:
  backend: "redis"

redis:
  url: "redis://localhost:6379/0"
  key_prefix: "test:"

log:
  level: "debug"
  format: "text"

viewstate:
  search_debounce: "150ms"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.MaxBatchIDs != 25 {
		t.Errorf("server.max_batch_ids = %d, want 25", cfg.Server.MaxBatchIDs)
	}

	if cfg.PokeAPI.BaseURL != "http://localhost:4000/api/v2" {
		t.Errorf("pokeapi.base_url = %q", cfg.PokeAPI.BaseURL)
	}
	if cfg.PokeAPI.Timeout != 3*time.Second {
		t.Errorf("pokeapi.timeout = %v, want 3s", cfg.PokeAPI.Timeout)
	}

	if cfg.Catalog.MaxAge != time.Hour {
		t.Errorf("catalog.max_age = %v, want 1h", cfg.Catalog.MaxAge)
	}
	if cfg.Catalog.DefaultPageSize != 40 {
		t.Errorf("catalog.default_page_size = %d, want 40", cfg.Catalog.DefaultPageSize)
	}

	if cfg.Cache.BackendName() != CacheBackendRedis {
		t.Errorf("cache.backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Redis.KeyPrefix != "test:" {
		t.Errorf("redis.key_prefix = %q", cfg.Redis.KeyPrefix)
	}
	if cfg.Redis.Retention != 168*time.Hour {
		t.Errorf("redis.retention = %v, want default 168h", cfg.Redis.Retention)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.ViewState.SearchDebounce != 150*time.Millisecond {
		t.Errorf("viewstate.search_debounce = %v, want 150ms", cfg.ViewState.SearchDebounce)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("CATALOG_MAX_AGE", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Catalog.MaxAge != 30*time.Minute {
		t.Errorf("catalog.max_age = %v, want 30m (ENV override)", cfg.Catalog.MaxAge)
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.PokeAPI.BaseURL != "https://pokeapi.co/api/v2" {
		t.Errorf("pokeapi.base_url = %q", cfg.PokeAPI.BaseURL)
	}
	if cfg.Catalog.MaxAge != 24*time.Hour {
		t.Errorf("catalog.max_age = %v, want 24h", cfg.Catalog.MaxAge)
	}
	if cfg.Cache.BackendName() != CacheBackendMemory {
		t.Errorf("cache.backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.ViewState.SearchDebounce != 300*time.Millisecond {
		t.Errorf("viewstate.search_debounce = %v, want 300ms", cfg.ViewState.SearchDebounce)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `{{{invalid yaml`)

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: 8080, MaxBatchIDs: 50, BatchWorkers: 8},
		PokeAPI:   PokeAPIConfig{BaseURL: "https://pokeapi.co/api/v2", Timeout: 10 * time.Second},
		Catalog:   CatalogConfig{MaxAge: 24 * time.Hour, DefaultPageSize: 20},
		Cache:     CacheConfig{Backend: "memory", SQLitePath: "./cache.db"},
		ViewState: ViewStateConfig{SearchDebounce: 300 * time.Millisecond},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "batch ids zero", mutate: func(c *Config) { c.Server.MaxBatchIDs = 0 }, wantErr: true},
		{name: "batch workers zero", mutate: func(c *Config) { c.Server.BatchWorkers = 0 }, wantErr: true},
		{name: "relative base url", mutate: func(c *Config) { c.PokeAPI.BaseURL = "/api/v2" }, wantErr: true},
		{name: "ftp base url", mutate: func(c *Config) { c.PokeAPI.BaseURL = "ftp://pokeapi.co" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.PokeAPI.Timeout = 0 }, wantErr: true},
		{name: "zero max age", mutate: func(c *Config) { c.Catalog.MaxAge = 0 }, wantErr: true},
		{name: "zero page size", mutate: func(c *Config) { c.Catalog.DefaultPageSize = 0 }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Cache.Backend = "memcached" }, wantErr: true},
		{name: "backend case insensitive", mutate: func(c *Config) { c.Cache.Backend = " SQLite " }},
		{name: "redis without url", mutate: func(c *Config) { c.Cache.Backend = "redis" }, wantErr: true},
		{name: "redis with url", mutate: func(c *Config) { c.Cache.Backend = "redis"; c.Redis.URL = "redis://localhost:6379" }},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Cache.Backend = "postgres" }, wantErr: true},
		{name: "postgres with dsn", mutate: func(c *Config) { c.Cache.Backend = "postgres"; c.Database.DSN = "postgres://u:p@localhost/db" }},
		{name: "sqlite without path", mutate: func(c *Config) { c.Cache.Backend = "sqlite"; c.Cache.SQLitePath = "" }, wantErr: true},
		{name: "negative debounce", mutate: func(c *Config) { c.ViewState.SearchDebounce = -time.Second }, wantErr: true},
		{name: "zero debounce", mutate: func(c *Config) { c.ViewState.SearchDebounce = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
