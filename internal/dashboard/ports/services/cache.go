package services

import (
	"context"
	"time"
)

// Cache строковое key-value хранилище с TTL.
// Get возвращает "" и nil, если ключа нет.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
