// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/webbooks/internal/core/author"
	"github.com/taibuivan/webbooks/internal/core/book"
	"github.com/taibuivan/webbooks/internal/core/genre"
	"github.com/taibuivan/webbooks/internal/core/instance"
	"github.com/taibuivan/webbooks/internal/core/language"
	"github.com/taibuivan/webbooks/internal/core/summary"
	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/config"
	"github.com/taibuivan/webbooks/internal/platform/constants"
	"github.com/taibuivan/webbooks/internal/platform/middleware"
	"github.com/taibuivan/webbooks/internal/platform/respond"
	"github.com/taibuivan/webbooks/internal/platform/session"
	"github.com/taibuivan/webbooks/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when all deps are healthy.
	Readiness http.HandlerFunc

	Summary  *summary.Handler
	Author   *author.Handler
	Book     *book.Handler
	Instance *instance.Handler
	Genre    *genre.Handler
	Language *language.Handler
	Auth     *auth.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, sessions session.Store, h Handlers) *Server {
	r := NewRouter(context, cfg, log, verifier, sessions, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree. It is separate from [NewServer] so the
// tree can be exercised without a listener.
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, sessions session.Store, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// Unknown paths and verbs answer in the JSON error envelope. Registered
	// before mounting so every sub-router inherits them.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Page"))
	})
	r.MethodNotAllowed(respond.MethodNotAllowed)

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route(constants.APIPrefix, func(api chi.Router) {

		// The index is the only view that counts visits.
		api.With(middleware.Session(sessions, cfg.IsProduction(), int(cfg.SessionTTL.Seconds()))).
			Mount("/", h.Summary.Routes())

		api.Mount("/authors", h.Author.Routes())
		api.Mount("/books", h.Book.Routes())
		api.Mount("/mybooks", h.Instance.BorrowedRoutes())
		api.Mount("/instances", h.Instance.Routes())
		api.Mount("/statuses", h.Instance.StatusRoutes())
		api.Mount("/genres", h.Genre.Routes())
		api.Mount("/languages", h.Language.Routes())
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Auth.UserRoutes())
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
