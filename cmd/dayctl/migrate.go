package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"daynote/internal/dashboard/db"
)

func migrateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := db.Migrate(cmd.Context(), &cfg.Postgres); err != nil {
				return err
			}
			return printVersion(cmd, opts)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := db.Rollback(cmd.Context(), &cfg.Postgres, steps); err != nil {
				return err
			}
			return printVersion(cmd, opts)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersion(cmd, opts)
		},
	}

	cmd.AddCommand(down, version)
	return cmd
}

func printVersion(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd.Context(), opts)
	if err != nil {
		return err
	}
	v, dirty, err := db.Version(cmd.Context(), &cfg.Postgres)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", v, dirty)
	return err
}
