// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration provides a thin wrapper around golang-migrate for
// running database schema migrations.
//
// # Sources
//
// The SQL files under data/migrations are embedded into the binary, so a
// deployed server needs no extra files. Setting MIGRATION_PATH switches to
// reading them from disk, which is handy while iterating on a new migration.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/taibuivan/webbooks/data/migrations"
)

// RunUp applies all pending UP migrations.
//
// # Parameters
//   - dsn: A libpq-compatible DSN or postgres:// URL.
//   - migrationsPath: Filesystem path to the migrations directory, or "" for the embedded set.
//   - logger: Structured logger for migration events.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := newMigrator(dsn, migrationsPath)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator, logger)

	migrator.Log = &migrateLogger{logger: logger}

	currentVersion, isDirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to get current version: %w", err)
	}

	if isDirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", currentVersion)
	}

	logger.Info("migration_started", slog.Int("current_version", int(currentVersion)))

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	newVersion, _, _ := migrator.Version()
	logger.Info("migration_successful",
		slog.Int("from_version", int(currentVersion)),
		slog.Int("to_version", int(newVersion)),
	)

	return nil
}

// Reset rolls every migration back and applies them again.
// Integration tests use it to start from an empty catalog.
func Reset(dsn string, logger *slog.Logger) error {
	migrator, err := newMigrator(dsn, "")
	if err != nil {
		return err
	}
	defer closeMigrator(migrator, logger)

	if err := migrator.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: down failed: %w", err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: up failed: %w", err)
	}
	return nil
}

func newMigrator(dsn, migrationsPath string) (*migrate.Migrate, error) {
	// golang-migrate pgx/v5 driver expects "pgx5://" scheme.
	databaseURL := convertToPgx5DSN(dsn)

	var (
		migrator *migrate.Migrate
		err      error
	)

	if migrationsPath != "" {
		migrator, err = migrate.New("file://"+migrationsPath, databaseURL)
	} else {
		source, sourceErr := iofs.New(migrations.Files, ".")
		if sourceErr != nil {
			return nil, fmt.Errorf("migration: failed to open embedded source: %w", sourceErr)
		}
		migrator, err = migrate.NewWithSourceInstance("iofs", source, databaseURL)
	}

	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}
	return migrator, nil
}

func closeMigrator(migrator *migrate.Migrate, logger *slog.Logger) {
	sourceError, dbError := migrator.Close()
	if sourceError != nil {
		logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
	}
	if dbError != nil {
		logger.Error("migration_db_close_failed", slog.Any("error", dbError))
	}
}

// convertToPgx5DSN ensures the DSN uses the pgx5:// scheme required by golang-migrate/v4.
func convertToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(dsn, prefix); found {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("migration_log", slog.String("line", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return false
}
