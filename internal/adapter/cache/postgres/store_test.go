package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache/cachetest"
	"github.com/heartmarshall/pokedex-pocket/internal/config"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// setupDB starts one PostgreSQL container for the package, migrates it, and
// returns a Store config pointing at it.
func setupDB(t *testing.T) config.DatabaseConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("setup test DB: %v", initErr)
	}

	return config.DatabaseConfig{
		DSN:             sharedDSN,
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	}
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
	if err := Migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func TestStore_Contract(t *testing.T) {
	cfg := setupDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pool, err := NewPool(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	cachetest.Run(t, func(t *testing.T, clock *cachetest.Clock) cachetest.Store {
		return New(pool, clock, logger)
	})
}

func TestMigrate_Idempotent(t *testing.T) {
	cfg := setupDB(t)
	require.NoError(t, Migrate(context.Background(), cfg.DSN))
}
