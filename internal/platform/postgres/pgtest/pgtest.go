// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest opens a freshly migrated database for integration tests.
//
// Tests using it are skipped unless TEST_DATABASE_URL points at a disposable
// PostgreSQL database. Every call drops and re-creates the schema.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/webbooks/internal/platform/migration"
	"github.com/taibuivan/webbooks/internal/platform/postgres"
)

// EnvDatabaseURL names the variable holding the test database DSN.
const EnvDatabaseURL = "TEST_DATABASE_URL"

// Open resets the test database and returns a pool closed at test cleanup.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set", EnvDatabaseURL)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := migration.Reset(dsn, logger); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	pool, err := postgres.NewPool(context.Background(), dsn, logger)
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}
