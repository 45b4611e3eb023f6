package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HTTPConfig конфигурация HTTP сервера.
type HTTPConfig struct {
	Host         string        `env:"DASHBOARD_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `env:"DASHBOARD_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"DASHBOARD_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"DASHBOARD_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"DASHBOARD_HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Validate implements validation.Validatable.
func (c HTTPConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
