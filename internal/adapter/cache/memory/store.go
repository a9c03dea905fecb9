package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache"
)

type entry struct {
	blob     []byte
	storedAt time.Time
}

// Store is an in-process cache. Values are kept encoded so a cached value is
// never shared with the caller that stored it.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   cache.Clock
	log     *slog.Logger
}

// New creates an empty Store. A nil clock uses the wall clock.
func New(clock cache.Clock, logger *slog.Logger) *Store {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &Store{
		entries: make(map[string]entry),
		clock:   clock,
		log:     logger.With("adapter", "cache_memory"),
	}
}

func (s *Store) IsValid(_ context.Context, key string, maxAge time.Duration) (bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	return ok && cache.Fresh(e.storedAt, s.clock.Now(), maxAge), nil
}

// Get decodes the entry under key into dst. An entry that no longer decodes
// into dst is reported as absent.
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := cache.Decode(e.blob, dst); err != nil {
		s.log.WarnContext(ctx, "cache entry unreadable", slog.String("key", key), slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

func (s *Store) Set(_ context.Context, key string, value any) error {
	blob, err := cache.Encode(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[key] = entry{blob: blob, storedAt: s.clock.Now()}
	s.mu.Unlock()
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
