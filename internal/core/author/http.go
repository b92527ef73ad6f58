package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webbooks/internal/platform/constants"
	requestutil "github.com/taibuivan/webbooks/internal/platform/request"
	"github.com/taibuivan/webbooks/internal/platform/respond"
	"github.com/taibuivan/webbooks/pkg/pagination"
)

// ListLocation is where successful author writes redirect to.
const ListLocation = constants.APIPrefix + "/authors"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /authors sub-router.
//
// # Endpoints
//   - GET    /             : Paginated author list
//   - POST   /, /create    : Create, then 303 to the list
//   - GET    /manage       : All authors plus an empty form
//   - GET    /{id}, /{id}/edit
//   - PUT    /{id}, POST|PUT /{id}/edit : Overwrite, then 303
//   - DELETE /{id}, POST /{id}/delete   : Delete, then 303
//
// Any other verb on these paths is answered with 405.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAuthors)
	router.Post("/", handler.createAuthor)

	// Every other verb on the create path is a 405, never an {id} lookup.
	router.Route("/create", func(create chi.Router) {
		create.Post("/", handler.createAuthor)
		create.MethodNotAllowed(respond.MethodNotAllowed)
	})
	router.Get("/manage", handler.manageAuthors)

	router.Route("/{id}", func(item chi.Router) {
		item.Get("/", handler.getAuthor)
		item.Put("/", handler.updateAuthor)
		item.Delete("/", handler.deleteAuthor)

		item.Get("/edit", handler.getAuthor)
		item.Post("/edit", handler.updateAuthor)
		item.Put("/edit", handler.updateAuthor)

		item.Post("/delete", handler.deleteAuthor)
	})

	return router
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	params, err := pagination.FromRequest(request, handler.service.PageSize())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, meta, err := handler.service.ListAuthorsPage(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if authors == nil {
		authors = []*Author{}
	}
	respond.Paginated(writer, authors, meta)
}

func (handler *Handler) manageAuthors(writer http.ResponseWriter, request *http.Request) {
	management, err := handler.service.ManageAuthors(request.Context(), ListLocation)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, management)
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.Decode(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.CreateAuthor(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.SeeOther(writer, ListLocation)
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.Decode(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.UpdateAuthor(request.Context(), authorID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.SeeOther(writer, ListLocation)
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAuthor(request.Context(), authorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.SeeOther(writer, ListLocation)
}
