// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the PostgreSQL content schema with golang-migrate.
//
// # Architecture
//
// This package belongs to the Infrastructure layer. The server applies
// pending migrations before it serves traffic when the postgres driver is
// selected; the `migrate` command exposes the same runner for operators.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Status is the schema version recorded in the database.
type Status struct {
	Version uint
	Dirty   bool
	// Applied is false on a database no migration has touched.
	Applied bool
}

// Runner wraps one golang-migrate instance.
type Runner struct {
	migrator *migrate.Migrate
	logger   *slog.Logger
}

// New opens the migration source and the target database.
//
// # Parameters
//   - dsn: A postgres:// URL; the scheme is rewritten for the pgx5 driver.
//   - migrationsPath: Filesystem path to the migrations directory.
//   - logger: Structured logger for migration events.
func New(dsn, migrationsPath string, logger *slog.Logger) (*Runner, error) {
	migrator, err := migrate.New(sourceURL(migrationsPath), convertToPgx5DSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}
	migrator.Log = &migrateLogger{logger: logger}
	return &Runner{migrator: migrator, logger: logger}, nil
}

// Status reports the current schema version.
func (runner *Runner) Status() (Status, error) {
	version, dirty, err := runner.migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("migration: failed to get current version: %w", err)
	}
	return Status{Version: version, Dirty: dirty, Applied: true}, nil
}

// Up applies all pending migrations. An up-to-date schema is not an error.
func (runner *Runner) Up() error {
	return runner.apply("up", (*migrate.Migrate).Up)
}

// Down rolls back the most recent migration.
func (runner *Runner) Down() error {
	return runner.apply("down", func(migrator *migrate.Migrate) error {
		return migrator.Steps(-1)
	})
}

// Close releases the source and the database connection.
func (runner *Runner) Close() {
	sourceError, dbError := runner.migrator.Close()
	if sourceError != nil {
		runner.logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
	}
	if dbError != nil {
		runner.logger.Error("migration_db_close_failed", slog.Any("error", dbError))
	}
}

func (runner *Runner) apply(direction string, step func(*migrate.Migrate) error) error {
	before, err := runner.Status()
	if err != nil {
		return err
	}
	if before.Dirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", before.Version)
	}

	runner.logger.Info("migration_started",
		slog.String("direction", direction),
		slog.Any("current_version", before.Version),
	)

	if err := step(runner.migrator); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			runner.logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: %s failed: %w", direction, err)
	}

	after, _ := runner.Status()
	runner.logger.Info("migration_successful",
		slog.Any("from_version", before.Version),
		slog.Any("to_version", after.Version),
	)
	return nil
}

// RunUp opens a runner, applies pending migrations and closes it.
func RunUp(dsn, migrationsPath string, logger *slog.Logger) error {
	return once(dsn, migrationsPath, logger, (*Runner).Up)
}

// RunDown opens a runner, rolls back one migration and closes it.
func RunDown(dsn, migrationsPath string, logger *slog.Logger) error {
	return once(dsn, migrationsPath, logger, (*Runner).Down)
}

func once(dsn, migrationsPath string, logger *slog.Logger, do func(*Runner) error) error {
	runner, err := New(dsn, migrationsPath, logger)
	if err != nil {
		return err
	}
	defer runner.Close()
	return do(runner)
}

func sourceURL(migrationsPath string) string {
	if strings.HasPrefix(migrationsPath, "file://") {
		return migrationsPath
	}
	return "file://" + migrationsPath
}

// convertToPgx5DSN rewrites postgres URLs to the pgx5:// scheme golang-migrate expects.
func convertToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger routes golang-migrate output to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("migration_log", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
