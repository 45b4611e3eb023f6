package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// GRPCConfig конфигурация gRPC сервера со health-сервисом.
type GRPCConfig struct {
	Host           string        `env:"DASHBOARD_GRPC_HOST" env-default:"0.0.0.0"`
	Port           int           `env:"DASHBOARD_GRPC_PORT" env-default:"50053"`
	HealthInterval time.Duration `env:"DASHBOARD_GRPC_HEALTH_INTERVAL" env-default:"10s"`
}

// Validate implements validation.Validatable.
func (g GRPCConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Port, validation.Min(0), validation.Max(65535)),
		validation.Field(&g.HealthInterval, validation.Required),
	)
}

// GetAddress возвращает адрес для gRPC сервера.
func (g *GRPCConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}
