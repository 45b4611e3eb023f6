// Package db открывает базу дневной панели и управляет ее схемой.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"daynote/internal/dashboard/config"
	"daynote/pkg/db/postgres"
	"daynote/pkg/logger"
)

const (
	LogDBInitializing    = "initializing dashboard database"
	LogDBInitialized     = "dashboard database initialized"
	LogMigrationStarting = "starting dashboard migrations"
)

const (
	ErrDBMigrations = "failed to apply dashboard migrations"
	ErrDBConnection = "failed to connect to dashboard database"
	ErrGetPath      = "failed to resolve migrations path"
)

const filePrefix = "file://"

// DB соединение с базой дневной панели.
type DB struct {
	database *postgres.Database
}

// New применяет миграции и открывает пул соединений.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	if err := Migrate(ctx, cfg); err != nil {
		return nil, err
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.PoolOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)
	return &DB{database: database}, nil
}

// Migrate применяет все новые миграции из cfg.MigrationsDir.
func Migrate(ctx context.Context, cfg *config.PostgresConfig) error {
	path, err := MigrationsURL(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	logger.Log(ctx).Info(ctx, LogMigrationStarting, zap.String("migrations_path", path))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), path); err != nil {
		return fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}
	return nil
}

// Rollback откатывает steps последних миграций.
func Rollback(ctx context.Context, cfg *config.PostgresConfig, steps int) error {
	path, err := MigrationsURL(cfg.MigrationsDir)
	if err != nil {
		return err
	}
	return postgres.RollbackDSN(ctx, cfg.GetConnectionURL(), path, steps)
}

// Version возвращает текущую версию схемы.
func Version(ctx context.Context, cfg *config.PostgresConfig) (uint, bool, error) {
	path, err := MigrationsURL(cfg.MigrationsDir)
	if err != nil {
		return 0, false, err
	}
	return postgres.VersionDSN(ctx, cfg.GetConnectionURL(), path)
}

// MigrationsURL переводит каталог миграций в URL источника file://.
func MigrationsURL(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return filePrefix + dir, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrGetPath, err)
	}
	return filePrefix + abs, nil
}

// Pool возвращает пул соединений для репозиториев.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение.
func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}

// Close закрывает пул.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}
