package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"daynote/internal/dashboard/adapters/grpc"
	httpServer "daynote/internal/dashboard/adapters/http"
	"daynote/internal/dashboard/bootstrap"
	"daynote/internal/dashboard/config"
	"daynote/pkg/logger"
	"daynote/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "DASHBOARD_LOGGER_MODE"
	EnvLoggerLevel = "DASHBOARD_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrBuildService         = "failed to build dashboard service"
	ErrStartGRPCServer      = "failed to start gRPC server"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrShutdown             = "shutdown finished with errors"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "dashboard service started"
	LogServiceShutdownDone = "dashboard service shutdown complete"
	LogInitService         = "initializing dashboard dependencies"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}
	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, config.DefaultEnvFiles...)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("timezone", cfg.Day.Timezone),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitService)
		svc, err := bootstrap.Build(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrBuildService, zap.Error(err))
			exitCode = 1
			return
		}

		grpcServer := grpc.New(&cfg.GRPC)
		if err := grpcServer.Start(ctx); err != nil {
			log.Error(ctx, ErrStartGRPCServer, zap.Error(err))
			_ = svc.Close(ctx)
			exitCode = 1
			return
		}

		watchCtx, stopWatch := context.WithCancel(ctx)
		go grpcServer.WatchHealth(watchCtx, svc.DB, cfg.GRPC.HealthInterval)

		app := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		})
		httpServer.SetupRouter(app, httpServer.Deps{
			UseCases: svc.UseCases,
			Tokens:   svc.Tokens,
			Metrics:  svc.Metrics,
			Health:   svc.DB.Ping,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		err = shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return app.ShutdownWithContext(ctx)
			},
			func(ctx context.Context) error {
				stopWatch()
				grpcServer.Stop(ctx)
				return nil
			},
		)
		// База и кэш закрываются после остановки серверов.
		if closeErr := svc.Close(ctx); closeErr != nil {
			err = closeErr
		}
		if err != nil {
			log.Error(ctx, ErrShutdown, zap.Error(err))
			exitCode = 1
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
