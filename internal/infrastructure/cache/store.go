package cache

import (
	"context"
	"time"
)

// Store is a best-effort key-value cache with per-entry expiration. A miss
// and a backend failure look the same to callers; the cache never fails a
// request.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, expiration time.Duration)
	Delete(ctx context.Context, key string)
}
