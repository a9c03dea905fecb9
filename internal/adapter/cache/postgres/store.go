package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache"
)

const tableName = "cache_entries"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store keeps cache entries in the cache_entries table, one row per key.
type Store struct {
	pool  *pgxpool.Pool
	clock cache.Clock
	log   *slog.Logger
}

// New creates a Store over an already migrated database.
func New(pool *pgxpool.Pool, clock cache.Clock, logger *slog.Logger) *Store {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &Store{
		pool:  pool,
		clock: clock,
		log:   logger.With("adapter", "cache_postgres"),
	}
}

func (s *Store) IsValid(ctx context.Context, key string, maxAge time.Duration) (bool, error) {
	query, args, err := psql.Select("stored_at").From(tableName).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var storedAt time.Time
	err = s.pool.QueryRow(ctx, query, args...).Scan(&storedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, mapError(err, key)
	}
	return cache.Fresh(storedAt, s.clock.Now(), maxAge), nil
}

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	query, args, err := psql.Select("payload").From(tableName).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var blob []byte
	err = s.pool.QueryRow(ctx, query, args...).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, mapError(err, key)
	}

	if err := cache.Decode(blob, dst); err != nil {
		s.log.WarnContext(ctx, "cache entry unreadable", slog.String("key", key), slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

// Set upserts the entry; the last writer wins.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	blob, err := cache.Encode(value)
	if err != nil {
		return err
	}

	query, args, err := psql.Insert(tableName).
		Columns("key", "payload", "stored_at").
		Values(key, blob, s.clock.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, stored_at = EXCLUDED.stored_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// mapError adds the key to err. Context errors stay matchable.
func mapError(err error, key string) error {
	return fmt.Errorf("postgres cache %s: %w", key, err)
}
