package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JWTConfig настройки выпуска и проверки access токенов.
type JWTConfig struct {
	SecretKey      string        `env:"DASHBOARD_JWT_SECRET_KEY" env-default:"change-me-in-production-please-32b"`
	AccessTokenTTL time.Duration `env:"DASHBOARD_JWT_ACCESS_TOKEN_TTL" env-default:"24h"`
	BCryptCost     int           `env:"DASHBOARD_BCRYPT_COST" env-default:"10"`
}

// Validate implements validation.Validatable.
func (c JWTConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SecretKey, validation.Required, validation.Length(32, 0)),
		validation.Field(&c.AccessTokenTTL, validation.Required),
		validation.Field(&c.BCryptCost, validation.Min(4), validation.Max(31)),
	)
}
