package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache/memory"
	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache/sqlite"
	"github.com/heartmarshall/pokedex-pocket/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenCache_Memory(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Cache: config.CacheConfig{Backend: " Memory "}}

	store, err := OpenCache(context.Background(), cfg, nil, discardLogger())
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &memory.Store{}, store)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenCache_SQLite(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Cache: config.CacheConfig{
		Backend:    config.CacheBackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "cache.db"),
	}}
	ctx := context.Background()

	store, err := OpenCache(ctx, cfg, nil, discardLogger())
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &sqlite.Store{}, store)
	require.NoError(t, store.Set(ctx, "k", []string{"a"}))
	valid, err := store.IsValid(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestOpenCache_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Cache: config.CacheConfig{Backend: "memcached"}}

	_, err := OpenCache(context.Background(), cfg, nil, discardLogger())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "memcached"))
}

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev (commit: unknown, built: unknown)", BuildVersion())
}
