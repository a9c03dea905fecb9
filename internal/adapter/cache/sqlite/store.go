package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache"
)

const schema = `
CREATE TABLE IF NOT EXISTS cache_entries (
    key       TEXT    PRIMARY KEY,
    payload   BLOB    NOT NULL,
    stored_at INTEGER NOT NULL
)`

// Store is a file-backed cache for single-process use such as the CLI.
// stored_at holds Unix nanoseconds.
type Store struct {
	db    *sql.DB
	clock cache.Clock
	log   *slog.Logger
}

// Open opens or creates the database at path and ensures the schema exists.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string, clock cache.Clock, logger *slog.Logger) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache: %w", err)
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range append(pragmas, schema) {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init sqlite cache: %w", err)
		}
	}

	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &Store{
		db:    db,
		clock: clock,
		log:   logger.With("adapter", "cache_sqlite"),
	}, nil
}

func (s *Store) IsValid(ctx context.Context, key string, maxAge time.Duration) (bool, error) {
	var nanos int64
	err := sq.Select("stored_at").From("cache_entries").Where(sq.Eq{"key": key}).
		RunWith(s.db).QueryRowContext(ctx).Scan(&nanos)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite cache %s: %w", key, err)
	}
	return cache.Fresh(time.Unix(0, nanos), s.clock.Now(), maxAge), nil
}

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	var blob []byte
	err := sq.Select("payload").From("cache_entries").Where(sq.Eq{"key": key}).
		RunWith(s.db).QueryRowContext(ctx).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite cache %s: %w", key, err)
	}

	if err := cache.Decode(blob, dst); err != nil {
		s.log.WarnContext(ctx, "cache entry unreadable", slog.String("key", key), slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

func (s *Store) Set(ctx context.Context, key string, value any) error {
	blob, err := cache.Encode(value)
	if err != nil {
		return err
	}

	_, err = sq.Insert("cache_entries").
		Options("OR REPLACE").
		Columns("key", "payload", "stored_at").
		Values(key, blob, s.clock.Now().UnixNano()).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("sqlite cache %s: set: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
