// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/middleware"
	requestutil "github.com/taibuivan/webbooks/internal/platform/request"
	"github.com/taibuivan/webbooks/internal/platform/respond"
	"github.com/taibuivan/webbooks/internal/platform/sec"
	"github.com/taibuivan/webbooks/pkg/uuid"
)

// # Definitions & Constructors

// Handler implements the account HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns the /auth sub-router.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and returns a JWT.
//   - GET  /me       : The authenticated account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.With(middleware.RequireAuth).Get("/me", handler.me)

	return router
}

// UserRoutes returns the admin-only /users sub-router.
//
// # Endpoints
//   - PUT    /{id}/role : Grants a role.
//   - DELETE /{id}      : Removes the account, releasing its loans.
func (handler *Handler) UserRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Put("/{id}/role", handler.changeRole)
	router.Delete("/{id}", handler.deleteUser)

	return router
}

/*
Register handles the creation of a new account.

POST /api/v1/auth/register

Response:
  - 201: User: Created account
  - 400: Validation failure
  - 409: Username or email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Login authenticates an account.

POST /api/v1/auth/login

Response:
  - 200: LoginSession: Access token and account
  - 401: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.GetUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) changeRole(writer http.ResponseWriter, request *http.Request) {
	actorID, targetID, err := actorAndTarget(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input RoleInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.ChangeRole(request.Context(), actorID, targetID, input.Role); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	actorID, targetID, err := actorAndTarget(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.DeleteUser(request.Context(), actorID, targetID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// actorAndTarget returns the caller's id and the {id} path parameter.
// A malformed target id cannot name an account, so it is a 404.
func actorAndTarget(request *http.Request) (string, string, error) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return "", "", err
	}

	targetID := requestutil.ID(request, "id")
	if !uuid.Valid(targetID) {
		return "", "", apperr.NotFound("User")
	}
	return actorID, targetID, nil
}
