// Package summary serves the catalog landing page: headline counts plus a
// per-visitor visit counter kept in the session.
package summary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/ctxutil"
	"github.com/taibuivan/webbooks/internal/platform/respond"
	"github.com/taibuivan/webbooks/internal/platform/session"
)

// VisitsKey is the session key holding the visit counter.
const VisitsKey = "num_visits"

var errNoSession = errors.New("summary: request carries no session")

// Counter returns a row count.
type Counter func(ctx context.Context) (int, error)

// Counters groups the catalog totals shown on the index page.
type Counters struct {
	Books              Counter
	Instances          Counter
	AvailableInstances Counter
	Authors            Counter
}

// Index is the landing page payload.
type Index struct {
	NumBooks              int `json:"num_books"`
	NumInstances          int `json:"num_instances"`
	NumInstancesAvailable int `json:"num_instances_available"`
	NumAuthors            int `json:"num_authors"`
	NumVisits             int `json:"num_visits"`
}

type Service struct {
	counters Counters
	logger   *slog.Logger
}

func NewService(counters Counters, logger *slog.Logger) *Service {
	return &Service{counters: counters, logger: logger}
}

/*
Index computes the catalog totals and counts the visit.

The visit number reported is the one stored before this request (1 on a
first visit); the stored value is then incremented.

Parameters:
  - context: context.Context
  - visitor: *session.Handle (the caller's session)

Returns:
  - *Index: Totals and the visit number
  - error: Database or session store failures
*/
func (service *Service) Index(context context.Context, visitor *session.Handle) (*Index, error) {
	var index Index

	totals := []struct {
		count  Counter
		target *int
	}{
		{service.counters.Books, &index.NumBooks},
		{service.counters.Instances, &index.NumInstances},
		{service.counters.AvailableInstances, &index.NumInstancesAvailable},
		{service.counters.Authors, &index.NumAuthors},
	}

	for _, total := range totals {
		value, err := total.count(context)
		if err != nil {
			return nil, err
		}
		*total.target = value
	}

	visits, err := visitor.Int(context, VisitsKey, 1)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := visitor.SetInt(context, VisitsKey, visits+1); err != nil {
		return nil, apperr.Internal(err)
	}
	index.NumVisits = visits

	service.logger.Debug("index_viewed", slog.String("session_id", visitor.ID()), slog.Int("num_visits", visits))
	return &index, nil
}

// # HTTP

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the index sub-router. It must sit behind the session middleware.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.index)
	return router
}

func (handler *Handler) index(writer http.ResponseWriter, request *http.Request) {
	visitor := ctxutil.GetSession(request.Context())
	if visitor == nil {
		respond.Error(writer, request, apperr.Internal(errNoSession))
		return
	}

	index, err := handler.service.Index(request.Context(), visitor)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, index)
}
