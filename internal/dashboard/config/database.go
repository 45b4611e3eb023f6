package config

import (
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"daynote/pkg/db/postgres"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host            string        `env:"DASHBOARD_POSTGRES_HOST" env-default:"0.0.0.0"`
	Port            int           `env:"DASHBOARD_POSTGRES_PORT" env-default:"5432"`
	User            string        `env:"DASHBOARD_POSTGRES_USER" env-default:"postgres"`
	Password        string        `env:"DASHBOARD_POSTGRES_PASSWORD" env-default:"postgres"`
	Database        string        `env:"DASHBOARD_POSTGRES_DB" env-default:"dashboard"`
	MinConn         int           `env:"DASHBOARD_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn         int           `env:"DASHBOARD_POSTGRES_MAX_CONN" env-default:"10"`
	MaxConnLifetime time.Duration `env:"DASHBOARD_POSTGRES_MAX_CONN_LIFETIME" env-default:"30m"`
	MigrationsDir   string        `env:"DASHBOARD_MIGRATIONS_DIR" env-default:"migrations/dashboard"`
}

// Validate implements validation.Validatable.
func (p PostgresConfig) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Host, validation.Required),
		validation.Field(&p.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&p.Database, validation.Required),
		validation.Field(&p.MinConn, validation.Min(0), validation.Max(p.MaxConn)),
		validation.Field(&p.MaxConn, validation.Required, validation.Min(1)),
	)
}

// GetDSN возвращает строку подключения для pgx.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL для golang-migrate.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// PoolOptions переводит настройки в параметры пула.
func (p *PostgresConfig) PoolOptions() postgres.PoolOptions {
	return postgres.PoolOptions{
		MinConns:        p.MinConn,
		MaxConns:        p.MaxConn,
		MaxConnLifetime: p.MaxConnLifetime,
	}
}
