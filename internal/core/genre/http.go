package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webbooks/internal/platform/middleware"
	requestutil "github.com/taibuivan/webbooks/internal/platform/request"
	"github.com/taibuivan/webbooks/internal/platform/respond"
	"github.com/taibuivan/webbooks/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /genres sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listGenres)
	router.Get("/{id}", handler.getGenre)

	// Catalog staff
	router.Group(func(staff chi.Router) {
		staff.Use(middleware.RequireRole(sec.RoleLibrarian))

		staff.Post("/", handler.createGenre)
		staff.Delete("/{id}", handler.deleteGenre)
	})

	return router
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.service.GetGenre(request.Context(), genreID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}

func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.Decode(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.service.CreateGenre(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, genre)
}

func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteGenre(request.Context(), genreID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
