package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daynote/internal/dashboard/bootstrap"
	"daynote/internal/dashboard/config"
	"daynote/pkg/logger"
)

var errNoUser = errors.New("--user is required")

type options struct {
	envFiles []string
	userID   string
	logLevel string
}

func main() {
	opts := &options{}
	root := newRootCmd(opts)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "dayctl",
		Short:         "Operator tool for the daily notes and todos dashboard",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := logger.NewLogger(logger.Development, opts.logLevel)
			if err != nil {
				return err
			}
			logger.SetGlobalLogger(l)
			cmd.SetContext(logger.NewContext(cmd.Context(), l))
			return nil
		},
	}

	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", config.DefaultEnvFiles, ".env files read before the environment")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	root.AddCommand(migrateCmd(opts))
	root.AddCommand(notesCmd(opts))
	root.AddCommand(todosCmd(opts))
	return root
}

func addUserFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().StringVar(&opts.userID, "user", "", "owner user id")
}

func loadConfig(ctx context.Context, opts *options) (*config.Config, error) {
	cfg, err := config.Load(ctx, opts.envFiles...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// withService собирает зависимости на время одной команды.
func withService(ctx context.Context, opts *options, fn func(*bootstrap.Service) error) error {
	if opts.userID == "" {
		return errNoUser
	}
	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	svc, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(ctx); err != nil {
			logger.Log(ctx).Warn(ctx, "close dependencies", zap.Error(err))
		}
	}()
	return fn(svc)
}
