package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/pokedex-pocket/internal/config"
)

func TestFlagOverrides_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		overrides   flagOverrides
		backend     string
		level       string
		wantBackend string
		wantLevel   string
	}{
		{"config values kept", flagOverrides{}, config.CacheBackendRedis, "debug", config.CacheBackendRedis, "debug"},
		{"default memory becomes sqlite", flagOverrides{}, config.CacheBackendMemory, "info", config.CacheBackendSQLite, "info"},
		{"explicit memory flag wins", flagOverrides{cache: config.CacheBackendMemory}, config.CacheBackendRedis, "info", config.CacheBackendMemory, "info"},
		{"explicit flags win", flagOverrides{cache: config.CacheBackendPostgres, logLevel: "error"}, config.CacheBackendSQLite, "info", config.CacheBackendPostgres, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{
				Cache: config.CacheConfig{Backend: tt.backend},
				Log:   config.LogConfig{Level: tt.level},
			}
			tt.overrides.apply(cfg)

			assert.Equal(t, tt.wantBackend, cfg.Cache.Backend)
			assert.Equal(t, tt.wantLevel, cfg.Log.Level)
		})
	}
}
