// Package cache содержит реализацию кэширования с использованием Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"daynote/internal/dashboard/config"
	"daynote/internal/dashboard/ports/services"
	"daynote/pkg/db/redis"
	"daynote/pkg/logger"
)

const (
	breakerName = "redis-cache"

	errMsgGet    = "failed to get cached value"
	errMsgSet    = "failed to set cached value"
	errMsgDelete = "failed to delete cached value"
)

// RedisCache кэш поверх go-redis; каждое обращение идет через circuit breaker.
type RedisCache struct {
	client *goredis.Client
	cb     *gobreaker.CircuitBreaker
}

var _ services.Cache = (*RedisCache)(nil)

// NewRedisCache подключается к Redis и оборачивает клиент в breaker.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (*RedisCache, error) {
	client, err := redis.New(ctx, cfg.Options())
	if err != nil {
		return nil, err
	}
	return NewWithClient(ctx, client, cfg), nil
}

// NewWithClient собирает кэш над готовым клиентом.
func NewWithClient(ctx context.Context, client *goredis.Client, cfg *config.RedisConfig) *RedisCache {
	log := logger.Log(ctx)
	failures := cfg.BreakerFailures

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(context.Background(), "circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &RedisCache{client: client, cb: cb}
}

// Get возвращает значение или "" при промахе.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	res, err := c.cb.Execute(func() (any, error) {
		val, err := c.client.Get(ctx, key).Result()
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return val, err
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgGet, err)
	}
	return res.(string), nil
}

// Set сохраняет значение с TTL.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := c.cb.Execute(func() (any, error) {
		return nil, c.client.Set(ctx, key, value, ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errMsgSet, err)
	}
	return nil
}

// Delete удаляет ключ.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	_, err := c.cb.Execute(func() (any, error) {
		return nil, c.client.Del(ctx, key).Err()
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errMsgDelete, err)
	}
	return nil
}

// State текущее состояние breaker.
func (c *RedisCache) State() gobreaker.State {
	return c.cb.State()
}

// Close закрывает клиент.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
