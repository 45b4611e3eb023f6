// Package config загружает конфигурацию сервисов из окружения и .env файлов.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"daynote/pkg/logger"
)

const (
	msgLoadingConfiguration = "loading configuration"
	msgConfigurationLoaded  = "configuration loaded successfully"
	msgEnvFileSkipped       = "env file not found, skipping"

	errFailedReadEnvFile       = "failed to read env file"
	errFailedLoadConfiguration = "failed to load configuration"
	errInvalidConfiguration    = "invalid configuration"

	attrService = "service"
	attrPath    = "path"
)

// Validatable реализуется конфигурациями, которые проверяют себя после загрузки.
type Validatable interface {
	Validate() error
}

// Load читает переменные окружения в T. Перед этим подгружаются envFiles
// (уже выставленные переменные окружения не перезаписываются).
// Если *T реализует Validatable, результат проверяется.
func Load[T any](ctx context.Context, serviceName string, envFiles ...string) (*T, error) {
	log := logger.Log(ctx).With(zap.String(attrService, serviceName))
	log.Info(ctx, msgLoadingConfiguration)

	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug(ctx, msgEnvFileSkipped, zap.String(attrPath, path))
				continue
			}
			log.Error(ctx, errFailedReadEnvFile, zap.String(attrPath, path), zap.Error(err))
			return nil, fmt.Errorf("%s %s: %w", errFailedReadEnvFile, path, err)
		}
	}

	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, errFailedLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	if v, ok := any(&cfg).(Validatable); ok {
		if err := v.Validate(); err != nil {
			log.Error(ctx, errInvalidConfiguration, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errInvalidConfiguration, err)
		}
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}
