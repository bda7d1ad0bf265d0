// Package cache stores rendered exports keyed by campaign fingerprint.
//
// Exports are deterministic, so an entry never goes stale while its key
// exists; the TTL only bounds memory.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Service is the cache contract used by the export service.
type Service interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Key namespaces an export fingerprint.
func Key(kind, fingerprint string) string {
	return "adsexport:" + kind + ":" + fingerprint
}

func checkTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}
	return nil
}
