package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/pokedex-pocket/internal/adapter/cache"
	"github.com/heartmarshall/pokedex-pocket/internal/config"
)

// Hash fields of a cache entry.
const (
	fieldPayload  = "payload"
	fieldStoredAt = "stored_at"
)

// NewClient connects to Redis using cfg and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Store keeps each cache entry in a Redis hash holding the encoded payload and
// the write time in Unix nanoseconds.
type Store struct {
	client    *redis.Client
	prefix    string
	retention time.Duration
	clock     cache.Clock
	log       *slog.Logger
}

// New creates a Store. Keys are namespaced with prefix. A positive retention
// sets a Redis TTL on each entry so abandoned keys are eventually dropped; it
// is unrelated to the freshness check.
func New(client *redis.Client, prefix string, retention time.Duration, clock cache.Clock, logger *slog.Logger) *Store {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	return &Store{
		client:    client,
		prefix:    prefix,
		retention: retention,
		clock:     clock,
		log:       logger.With("adapter", "cache_redis"),
	}
}

func (s *Store) IsValid(ctx context.Context, key string, maxAge time.Duration) (bool, error) {
	raw, err := s.client.HGet(ctx, s.prefix+key, fieldStoredAt).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis cache %s: stored_at: %w", key, err)
	}

	nanos, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.log.WarnContext(ctx, "cache entry has bad timestamp", slog.String("key", key), slog.String("value", raw))
		return false, nil
	}
	return cache.Fresh(time.Unix(0, nanos), s.clock.Now(), maxAge), nil
}

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	blob, err := s.client.HGet(ctx, s.prefix+key, fieldPayload).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis cache %s: payload: %w", key, err)
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

	k := s.prefix + key
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, fieldPayload, blob, fieldStoredAt, s.clock.Now().UnixNano())
		if s.retention > 0 {
			pipe.Expire(ctx, k, s.retention)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis cache %s: set: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
