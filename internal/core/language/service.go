package language

import (
	"context"
	"log/slog"

	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/validate"
	"github.com/taibuivan/webbooks/pkg/query"
)

const resource = "Language"

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

// ListLanguages returns every language ordered by name.
func (service *Service) ListLanguages(context context.Context) ([]*Language, error) {
	return service.repo.ListBy(context, query.Criteria{
		OrderBy: []query.Order{query.Asc("name"), query.Asc("id")},
	})
}

func (service *Service) GetLanguage(context context.Context, id int) (*Language, error) {
	language, err := service.repo.FindByID(context, id)
	return language, dberr.NotFound(err, resource)
}

func (service *Service) CreateLanguage(context context.Context, input Input) (*Language, error) {
	input.normalize()

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, MaxNameLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	language := &Language{Name: input.Name}
	if err := service.repo.Create(context, language); err != nil {
		return nil, err
	}

	service.logger.Info("language_created", slog.Int("language_id", language.ID), slog.String("name", language.Name))
	return language, nil
}

// DeleteLanguage removes a language together with every book written in it.
func (service *Service) DeleteLanguage(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return dberr.NotFound(err, resource)
	}

	service.logger.Warn("language_deleted", slog.Int("language_id", id))
	return nil
}
