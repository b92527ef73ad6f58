package instance

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webbooks/internal/platform/middleware"
	requestutil "github.com/taibuivan/webbooks/internal/platform/request"
	"github.com/taibuivan/webbooks/internal/platform/respond"
	"github.com/taibuivan/webbooks/internal/platform/sec"
	"github.com/taibuivan/webbooks/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /instances sub-router.
//
// Reading is public; creating, lending, returning and removing copies is
// catalog staff work.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listInstances)
	router.Get("/{id}", handler.getInstance)

	router.Group(func(staff chi.Router) {
		staff.Use(middleware.RequireRole(sec.RoleLibrarian))

		staff.Post("/", handler.createInstance)
		staff.Put("/{id}", handler.updateInstance)
		staff.Delete("/{id}", handler.deleteInstance)
	})

	return router
}

// StatusRoutes returns the read-only /statuses sub-router.
func (handler *Handler) StatusRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listStatuses)
	return router
}

// BorrowedRoutes returns the /mybooks sub-router: the caller's current loans.
func (handler *Handler) BorrowedRoutes() chi.Router {
	router := chi.NewRouter()
	router.With(middleware.RequireAuth).Get("/", handler.listBorrowed)
	return router
}

func (handler *Handler) listBorrowed(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params, err := pagination.FromRequest(request, handler.service.BorrowedPageSize())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	loans, meta, err := handler.service.ListBorrowedByUser(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if loans == nil {
		loans = []*View{}
	}
	respond.Paginated(writer, loans, meta)
}

func (handler *Handler) listInstances(writer http.ResponseWriter, request *http.Request) {
	instances, err := handler.service.ListInstances(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if instances == nil {
		instances = []*View{}
	}
	respond.OK(writer, instances)
}

func (handler *Handler) getInstance(writer http.ResponseWriter, request *http.Request) {
	instanceID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	instance, err := handler.service.GetInstance(request.Context(), instanceID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, instance)
}

func (handler *Handler) listStatuses(writer http.ResponseWriter, request *http.Request) {
	statuses, err := handler.service.ListStatuses(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if statuses == nil {
		statuses = []*Status{}
	}
	respond.OK(writer, statuses)
}

func (handler *Handler) createInstance(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.Decode(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	instance, err := handler.service.CreateInstance(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, instance)
}

func (handler *Handler) updateInstance(writer http.ResponseWriter, request *http.Request) {
	instanceID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.Decode(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	instance, err := handler.service.UpdateInstance(request.Context(), instanceID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, instance)
}

func (handler *Handler) deleteInstance(writer http.ResponseWriter, request *http.Request) {
	instanceID, err := requestutil.IntID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteInstance(request.Context(), instanceID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
