package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webbooks/internal/platform/constants"
	requestutil "github.com/taibuivan/webbooks/internal/platform/request"
	"github.com/taibuivan/webbooks/internal/platform/respond"
	"github.com/taibuivan/webbooks/pkg/pagination"
)

// ListLocation is where successful book writes redirect to.
const ListLocation = constants.APIPrefix + "/books"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /books sub-router.
//
// Form clients cannot send PUT or DELETE, so every write also has a POST alias.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listBooks)
	router.Post("/", handler.createBook)

	// Every other verb on the create path is a 405, never an {id} lookup.
	router.Route("/create", func(create chi.Router) {
		create.Post("/", handler.createBook)
		create.MethodNotAllowed(respond.MethodNotAllowed)
	})

	router.Route("/{id}", func(item chi.Router) {
		item.Get("/", handler.getBook)
		item.Put("/", handler.updateBook)
		item.Delete("/", handler.deleteBook)

		item.Post("/update", handler.updateBook)
		item.Post("/delete", handler.deleteBook)
	})

	return router
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	params, err := pagination.FromRequest(request, handler.service.PageSize())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, meta, err := handler.service.ListBooksPage(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if books == nil {
		books = []*Listing{}
	}
	respond.Paginated(writer, books, meta)
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.Decode(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.CreateBook(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.SeeOther(writer, ListLocation)
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.Decode(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.UpdateBook(request.Context(), bookID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.SeeOther(writer, ListLocation)
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.SeeOther(writer, ListLocation)
}
