package language

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

// Routes returns the /languages sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listLanguages)
	router.Get("/{id}", handler.getLanguage)

	// Catalog staff
	router.Group(func(staff chi.Router) {
		staff.Use(middleware.RequireRole(sec.RoleLibrarian))

		staff.Post("/", handler.createLanguage)
		staff.Delete("/{id}", handler.deleteLanguage)
	})

	return router
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	languages, err := handler.service.ListLanguages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, languages)
}

func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	languageID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	language, err := handler.service.GetLanguage(request.Context(), languageID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, language)
}

func (handler *Handler) createLanguage(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.Decode(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	language, err := handler.service.CreateLanguage(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, language)
}

func (handler *Handler) deleteLanguage(writer http.ResponseWriter, request *http.Request) {
	languageID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLanguage(request.Context(), languageID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
