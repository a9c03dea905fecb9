// Package cachetest runs the behaviour every cache store must share.
package cachetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Store is the contract under test.
type Store interface {
	IsValid(ctx context.Context, key string, maxAge time.Duration) (bool, error)
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Ping(ctx context.Context) error
}

// Clock is a manually advanced clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type page struct {
	Count   int      `json:"count"`
	Next    *string  `json:"next"`
	Results []string `json:"results"`
}

// Run exercises a store built by newStore. Each subtest gets its own store
// and clock; keys are unique per subtest so shared backends do not collide.
func Run(t *testing.T, newStore func(t *testing.T, clock *Clock) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t, NewClock())

		valid, err := s.IsValid(ctx, "missing-"+t.Name(), time.Hour)
		require.NoError(t, err)
		assert.False(t, valid)

		var dst page
		found, err := s.Get(ctx, "missing-"+t.Name(), &dst)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t, NewClock())
		key := "roundtrip-" + t.Name()
		want := page{Count: 3, Results: []string{"bulbasaur", "ivysaur", "venusaur"}}

		require.NoError(t, s.Set(ctx, key, want))

		var got page
		found, err := s.Get(ctx, key, &got)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, want, got)
		assert.Nil(t, got.Next)
	})

	t.Run("freshness follows max age", func(t *testing.T) {
		clock := NewClock()
		s := newStore(t, clock)
		key := "fresh-" + t.Name()

		require.NoError(t, s.Set(ctx, key, page{Count: 1}))

		valid, err := s.IsValid(ctx, key, time.Hour)
		require.NoError(t, err)
		assert.True(t, valid, "just written")

		clock.Advance(59 * time.Minute)
		valid, err = s.IsValid(ctx, key, time.Hour)
		require.NoError(t, err)
		assert.True(t, valid, "inside max age")

		clock.Advance(2 * time.Minute)
		valid, err = s.IsValid(ctx, key, time.Hour)
		require.NoError(t, err)
		assert.False(t, valid, "past max age")

		// Stale entries are still readable.
		var got page
		found, err := s.Get(ctx, key, &got)
		require.NoError(t, err)
		assert.True(t, found)

		valid, err = s.IsValid(ctx, key, 0)
		require.NoError(t, err)
		assert.False(t, valid, "zero max age")
	})

	t.Run("overwrite resets age", func(t *testing.T) {
		clock := NewClock()
		s := newStore(t, clock)
		key := "overwrite-" + t.Name()

		require.NoError(t, s.Set(ctx, key, page{Count: 1}))
		clock.Advance(2 * time.Hour)
		require.NoError(t, s.Set(ctx, key, page{Count: 2}))

		valid, err := s.IsValid(ctx, key, time.Hour)
		require.NoError(t, err)
		assert.True(t, valid)

		var got page
		_, err = s.Get(ctx, key, &got)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Count)
	})

	t.Run("wrong shape reads as absent", func(t *testing.T) {
		s := newStore(t, NewClock())
		key := "shape-" + t.Name()

		require.NoError(t, s.Set(ctx, key, "just a string"))

		var got page
		found, err := s.Get(ctx, key, &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("ping", func(t *testing.T) {
		s := newStore(t, NewClock())
		assert.NoError(t, s.Ping(ctx))
	})
}
