package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"daynote/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level string `env:"DASHBOARD_LOGGER_LEVEL" env-default:"info"`
	Mode  string `env:"DASHBOARD_LOGGER_MODE" env-default:"development"`
}

// Validate implements validation.Validatable.
func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&l.Mode, validation.In(string(logger.Development), string(logger.Production))),
	)
}

// GetEnvironment переводит режим в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == string(logger.Production) {
		return logger.Production
	}
	return logger.Development
}
