package config

import (
	"net"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"daynote/pkg/db/redis"
)

// RedisConfig настройки кэша.
type RedisConfig struct {
	Enabled         bool          `env:"DASHBOARD_REDIS_ENABLED" env-default:"true"`
	Host            string        `env:"DASHBOARD_REDIS_HOST" env-default:"localhost"`
	Port            int           `env:"DASHBOARD_REDIS_PORT" env-default:"6379"`
	Password        string        `env:"DASHBOARD_REDIS_PASSWORD" env-default:""`
	DB              int           `env:"DASHBOARD_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `env:"DASHBOARD_REDIS_CONNECT_TIMEOUT" env-default:"2s"`
	ReadTimeout     time.Duration `env:"DASHBOARD_REDIS_READ_TIMEOUT" env-default:"500ms"`
	WriteTimeout    time.Duration `env:"DASHBOARD_REDIS_WRITE_TIMEOUT" env-default:"500ms"`
	PoolSize        int           `env:"DASHBOARD_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `env:"DASHBOARD_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `env:"DASHBOARD_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `env:"DASHBOARD_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`

	// Circuit breaker вокруг обращений к Redis.
	BreakerMaxRequests uint32        `env:"DASHBOARD_REDIS_BREAKER_MAX_REQUESTS" env-default:"3"`
	BreakerInterval    time.Duration `env:"DASHBOARD_REDIS_BREAKER_INTERVAL" env-default:"30s"`
	BreakerTimeout     time.Duration `env:"DASHBOARD_REDIS_BREAKER_TIMEOUT" env-default:"15s"`
	BreakerFailures    uint32        `env:"DASHBOARD_REDIS_BREAKER_FAILURES" env-default:"5"`
}

// Validate implements validation.Validatable.
func (c RedisConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DB, validation.Min(0), validation.Max(15)),
		validation.Field(&c.BreakerFailures, validation.Required),
	)
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Options переводит настройки в параметры клиента.
func (c *RedisConfig) Options() redis.Options {
	return redis.Options{
		Addr:            c.GetAddress(),
		Password:        c.Password,
		DB:              c.DB,
		PoolSize:        c.PoolSize,
		MinIdleConns:    c.MinIdle,
		DialTimeout:     c.ConnectTimeout,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		ConnMaxIdleTime: c.IdleTimeout,
		ConnMaxLifetime: c.MaxConnLifetime,
	}
}
