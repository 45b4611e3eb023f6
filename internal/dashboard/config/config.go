// Package config описывает конфигурацию сервиса dashboard.
package config

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	pkgconfig "daynote/pkg/config"
	"daynote/pkg/logger"
)

const (
	ServiceName = "dashboard"

	LogConfigLoaded     = "Configuration loaded successfully"
	ErrFailedLoadConfig = "Failed to load configuration"
)

// DefaultEnvFiles .env файлы, которые читаются перед окружением.
var DefaultEnvFiles = []string{".env", "deploy/.env"}

// Config полная конфигурация сервиса.
type Config struct {
	Postgres PostgresConfig
	Redis    RedisConfig
	HTTP     HTTPConfig
	GRPC     GRPCConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	Shutdown ShutdownConfig
	Day      DayConfig
}

// Validate проверяет значения, которые cleanenv не может проверить сам.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Postgres),
		validation.Field(&c.Redis),
		validation.Field(&c.HTTP),
		validation.Field(&c.GRPC),
		validation.Field(&c.JWT),
		validation.Field(&c.Logging),
		validation.Field(&c.Day),
	)
}

// Load читает конфигурацию из .env файлов и окружения.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFiles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("grpc_address", cfg.GRPC.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("timezone", cfg.Day.Timezone),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}
