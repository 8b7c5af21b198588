// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/studyhub/internal/platform/migration"
)

var errNoDatabase = errors.New("DATABASE_URL is required for migrations")

func newMigrateCommand(load loader) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL content schema",
	}

	step := func(apply func(dsn, path string, log *slog.Logger) error) func(*cobra.Command, []string) error {
		return func(*cobra.Command, []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errNoDatabase
			}
			return apply(cfg.DatabaseURL, cfg.MigrationPath, log)
		}
	}

	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  step(migration.RunUp),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE:  step(migration.RunDown),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return step(func(dsn, path string, log *slog.Logger) error {
					runner, err := migration.New(dsn, path, log)
					if err != nil {
						return err
					}
					defer runner.Close()

					status, err := runner.Status()
					if err != nil {
						return err
					}
					if !status.Applied {
						_, err = fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "version %d dirty=%t\n", status.Version, status.Dirty)
					return err
				})(cmd, nil)
			},
		},
	)
	return migrate
}
