package genre

import (
	"context"
	"log/slog"

	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/validate"
	"github.com/taibuivan/webbooks/pkg/query"
)

const resource = "Genre"

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListGenres returns every genre ordered by name.
func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListBy(context, query.Criteria{
		OrderBy: []query.Order{query.Asc("name"), query.Asc("id")},
	})
}

func (service *Service) GetGenre(context context.Context, id int) (*Genre, error) {
	genre, err := service.repo.FindByID(context, id)
	return genre, dberr.NotFound(err, resource)
}

func (service *Service) CreateGenre(context context.Context, input Input) (*Genre, error) {
	input.normalize()

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, MaxNameLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	genre := &Genre{Name: input.Name}
	if err := service.repo.Create(context, genre); err != nil {
		return nil, err
	}

	service.logger.Info("genre_created", slog.Int("genre_id", genre.ID), slog.String("name", genre.Name))
	return genre, nil
}

// DeleteGenre removes a genre together with every book filed under it.
func (service *Service) DeleteGenre(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return dberr.NotFound(err, resource)
	}

	service.logger.Warn("genre_deleted", slog.Int("genre_id", id))
	return nil
}
