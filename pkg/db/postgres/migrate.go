package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // драйвер postgres для migrate
	_ "github.com/golang-migrate/migrate/v4/source/file"       // источник file:// для migrate
	"go.uber.org/zap"

	"daynote/pkg/logger"
)

const (
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
	ErrRollbackMigrations      = "failed to roll back migrations"
	ErrReadVersion             = "failed to read migration version"
)

// MigrateDSN применяет все новые миграции. Отсутствие изменений не является ошибкой.
func MigrateDSN(ctx context.Context, dsn, migrationsPath string) error {
	return withMigrator(ctx, dsn, migrationsPath, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("%s: %w", ErrApplyMigrations, err)
		}
		logger.Log(ctx).Info(ctx, LogMigrationsApplied)
		return nil
	})
}

// RollbackDSN откатывает steps последних миграций.
func RollbackDSN(ctx context.Context, dsn, migrationsPath string, steps int) error {
	return withMigrator(ctx, dsn, migrationsPath, func(m *migrate.Migrate) error {
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("%s: %w", ErrRollbackMigrations, err)
		}
		logger.Log(ctx).Info(ctx, LogMigrationsRolled, zap.Int("steps", steps))
		return nil
	})
}

// VersionDSN возвращает текущую версию схемы и флаг dirty.
func VersionDSN(ctx context.Context, dsn, migrationsPath string) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := withMigrator(ctx, dsn, migrationsPath, func(m *migrate.Migrate) error {
		var err error
		version, dirty, err = m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("%s: %w", ErrReadVersion, err)
		}
		return nil
	})
	return version, dirty, err
}

func withMigrator(ctx context.Context, dsn, migrationsPath string, fn func(*migrate.Migrate) error) error {
	log := logger.Log(ctx)

	m, err := migrate.New(migrationsPath, dsn)
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err), zap.String("path", migrationsPath))
		return fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn(ctx, "failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err := fn(m); err != nil {
		log.Error(ctx, "migration step failed", zap.Error(err))
		return err
	}
	return nil
}
