// Package cache holds what the cache store backends share: the blob codec
// and the freshness rule.
package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// zstd encoders and decoders are safe for concurrent EncodeAll/DecodeAll.
var codecs = sync.OnceValues(func() (*zstd.Encoder, *zstd.Decoder) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("cache: zstd encoder: %v", err))
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		panic(fmt.Sprintf("cache: zstd decoder: %v", err))
	}
	return enc, dec
})

// Encode serializes value as JSON and compresses it.
func Encode(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("cache: encode: %w", err)
	}
	enc, _ := codecs()
	return enc.EncodeAll(raw, make([]byte, 0, len(raw)/4)), nil
}

// Decode reverses Encode into dst, which must be a pointer.
func Decode(blob []byte, dst any) error {
	_, dec := codecs()
	raw, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return fmt.Errorf("cache: decompress: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("cache: decode: %w", err)
	}
	return nil
}

// Clock reports the current time. Stores take one so tests can move time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Fresh reports whether an entry written at storedAt is still within maxAge
// at now. A non-positive maxAge is never fresh.
func Fresh(storedAt, now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(storedAt) < maxAge
}
