// Package bootstrap собирает зависимости дневной панели из конфигурации.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"daynote/internal/dashboard/adapters/cache"
	"daynote/internal/dashboard/adapters/http/handlers"
	"daynote/internal/dashboard/adapters/postgres"
	adaptersvc "daynote/internal/dashboard/adapters/services"
	"daynote/internal/dashboard/app"
	"daynote/internal/dashboard/config"
	"daynote/internal/dashboard/db"
	"daynote/internal/dashboard/domain/dayscope"
	"daynote/internal/dashboard/ports/services"
	"daynote/pkg/logger"
	"daynote/pkg/metrics"
)

// MetricsNamespace префикс метрик сервиса.
const MetricsNamespace = "daynote"

const (
	ErrResolveTimezone = "failed to resolve timezone"
	ErrOpenDatabase    = "failed to open database"
	LogCacheDisabled   = "todo cache disabled"
	LogCacheFallback   = "redis unavailable, continuing without todo cache"
)

// Service собранные зависимости.
type Service struct {
	DB       *db.DB
	Cache    *cache.RedisCache
	Metrics  *metrics.Collector
	Tokens   services.TokenService
	Days     *dayscope.Resolver
	UseCases handlers.UseCases
}

// Build открывает базу (с миграциями) и Redis и собирает use case.
// Недоступный Redis не мешает запуску: задачи читаются без кэша.
func Build(ctx context.Context, cfg *config.Config) (*Service, error) {
	log := logger.Log(ctx)

	loc, err := cfg.Day.Location()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrResolveTimezone, err)
	}
	days := dayscope.NewResolver(loc, time.Now)

	database, err := db.New(ctx, &cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrOpenDatabase, err)
	}

	var (
		redisCache *cache.RedisCache
		todoCache  services.Cache
	)
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedisCache(ctx, &cfg.Redis)
		if err != nil {
			log.Warn(ctx, LogCacheFallback, zap.Error(err))
		} else {
			todoCache = redisCache
		}
	} else {
		log.Info(ctx, LogCacheDisabled)
	}

	collector := metrics.NewCollector(MetricsNamespace)
	repos := postgres.NewRepositoryFactory(database.Pool())
	svcs := adaptersvc.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.BCryptCost)

	notes := app.NewNoteUseCase(repos.NoteRepository(), days, collector)
	todos := app.NewTodoUseCase(repos.TodoRepository(), todoCache, days, collector)
	profile := app.NewProfileUseCase(repos.UserRepository(), collector)

	return &Service{
		DB:      database,
		Cache:   redisCache,
		Metrics: collector,
		Tokens:  svcs.TokenService(),
		Days:    days,
		UseCases: handlers.UseCases{
			Auth:     app.NewAuthUseCase(repos.UserRepository(), svcs.PasswordService(), svcs.TokenService(), collector),
			Notes:    notes,
			Calendar: app.NewCalendarUseCase(repos.NoteRepository(), days),
			Todos:    todos,
			Profile:  profile,
			Summary:  app.NewSummaryUseCase(notes, todos, profile, days),
		},
	}, nil
}

// Close освобождает Redis и пул соединений.
func (s *Service) Close(ctx context.Context) error {
	var errs []error
	if s.Cache != nil {
		if err := s.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	s.DB.Close(ctx)
	return errors.Join(errs...)
}
