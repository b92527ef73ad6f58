// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the WebBooks HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/webbooks/internal/api"
	"github.com/taibuivan/webbooks/internal/core/author"
	"github.com/taibuivan/webbooks/internal/core/book"
	"github.com/taibuivan/webbooks/internal/core/genre"
	"github.com/taibuivan/webbooks/internal/core/instance"
	"github.com/taibuivan/webbooks/internal/core/language"
	"github.com/taibuivan/webbooks/internal/core/summary"
	"github.com/taibuivan/webbooks/internal/platform/config"
	"github.com/taibuivan/webbooks/internal/platform/constants"
	"github.com/taibuivan/webbooks/internal/platform/migration"
	pgstore "github.com/taibuivan/webbooks/internal/platform/postgres"
	redisstore "github.com/taibuivan/webbooks/internal/platform/redis"
	"github.com/taibuivan/webbooks/internal/platform/sec"
	"github.com/taibuivan/webbooks/internal/platform/session"
	"github.com/taibuivan/webbooks/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context: cancelled on SIGINT/SIGTERM, which also stops background
	// workers such as the rate limiter cleanup.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Startup gets its own deadline so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.GlobalRequestTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security ───────────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckSessions: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	genreService := genre.NewService(genre.NewPostgresRepository(pool), log)
	languageService := language.NewService(language.NewPostgresRepository(pool), log)
	authorService := author.NewService(author.NewPostgresRepository(pool), cfg.Paging.AuthorPageSize, log)

	instanceService := instance.NewService(
		instance.NewPostgresRepository(pool),
		instance.Codes{
			Available: instance.StatusID(cfg.Statuses.AvailableID),
			OnLoan:    instance.StatusID(cfg.Statuses.OnLoanID),
		},
		cfg.Paging.BorrowedPageSize,
		log,
	)

	bookService := book.NewService(
		book.NewPostgresRepository(pool),
		genreService, languageService, instanceService,
		cfg.Paging.BookPageSize,
		log,
	)

	summaryService := summary.NewService(summary.Counters{
		Books:              bookService.CountAll,
		Instances:          instanceService.CountAll,
		AvailableInstances: instanceService.CountAvailable,
		Authors:            authorService.CountAuthors,
	}, log)

	authService := auth.NewService(auth.NewUserRepository(pool), jwtSvc, constants.AccessTokenTTL, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Summary:   summary.NewHandler(summaryService),
		Author:    author.NewHandler(authorService),
		Book:      book.NewHandler(bookService),
		Instance:  instance.NewHandler(instanceService),
		Genre:     genre.NewHandler(genreService),
		Language:  language.NewHandler(languageService),
		Auth:      auth.NewHandler(authService),
	}

	server := api.NewServer(rootCtx, cfg, log, jwtSvc, sessions, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger every entry of which carries the app name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
