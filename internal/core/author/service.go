package author

import (
	"context"
	"log/slog"

	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/validate"
	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/pagination"
	"github.com/taibuivan/webbooks/pkg/query"
)

const resource = "Author"

// defaultOrder lists authors alphabetically, like a catalog card index.
var defaultOrder = []query.Order{query.Asc("last_name"), query.Asc("first_name"), query.Asc("id")}

type Service struct {
	repo     Repository
	pageSize int
	logger   *slog.Logger
}

func NewService(repo Repository, pageSize int, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		pageSize: pageSize,
		logger:   logger,
	}
}

// PageSize is the number of authors per listing page.
func (service *Service) PageSize() int {
	return service.pageSize
}

// # Reads

// ListAuthors returns every author in catalog order.
func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListBy(context, query.Criteria{OrderBy: defaultOrder})
}

// ListAuthorsPage returns one page of authors in catalog order.
func (service *Service) ListAuthorsPage(context context.Context, params pagination.Params) ([]*Author, pagination.Meta, error) {
	total, err := service.repo.Count(context, query.Criteria{})
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	meta, err := params.Meta(total)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	authors, err := service.repo.ListBy(context, query.Criteria{OrderBy: defaultOrder}.Page(meta.Limit, meta.Offset()))
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return authors, meta, nil
}

// CountAuthors returns the number of authors in the catalog.
func (service *Service) CountAuthors(context context.Context) (int, error) {
	return service.repo.Count(context, query.Criteria{})
}

// ManageAuthors returns every author together with a blank creation form.
func (service *Service) ManageAuthors(context context.Context, formAction string) (*Management, error) {
	authors, err := service.ListAuthors(context)
	if err != nil {
		return nil, err
	}

	if authors == nil {
		authors = []*Author{}
	}
	return &Management{Authors: authors, Form: EmptyForm(formAction)}, nil
}

func (service *Service) GetAuthor(context context.Context, id int) (*Author, error) {
	author, err := service.repo.FindByID(context, id)
	return author, dberr.NotFound(err, resource)
}

// # Writes

func (service *Service) CreateAuthor(context context.Context, input Input) (*Author, error) {
	author, err := input.toAuthor()
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created", slog.Int("author_id", author.ID), slog.String("last_name", author.LastName))
	return author, nil
}

// UpdateAuthor overwrites all four mutable fields of an existing author.
func (service *Service) UpdateAuthor(context context.Context, id int, input Input) (*Author, error) {
	author, err := input.toAuthor()
	if err != nil {
		return nil, err
	}
	author.ID = id

	if err := service.repo.Update(context, author); err != nil {
		return nil, dberr.NotFound(err, resource)
	}

	service.logger.Info("author_updated", slog.Int("author_id", author.ID))
	return author, nil
}

// DeleteAuthor removes an author. Their books stay in the catalog with the
// author dropped from their author lists.
func (service *Service) DeleteAuthor(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return dberr.NotFound(err, resource)
	}

	service.logger.Warn("author_deleted", slog.Int("author_id", id))
	return nil
}

// toAuthor normalizes and validates the raw input and converts it into an [Author].
func (input Input) toAuthor() (*Author, error) {
	input.normalize()

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, input.FirstName).MaxLen(FieldFirstName, input.FirstName, MaxNameLength)
	validator.Required(FieldLastName, input.LastName).MaxLen(FieldLastName, input.LastName, MaxNameLength)

	var born, died *date.Date
	validator.Date(FieldDateOfBirth, input.DateOfBirth, &born)
	validator.Date(FieldDateOfDeath, input.DateOfDeath, &died)
	validator.NotBefore(FieldDateOfDeath, died, born, "Date of death cannot precede date of birth")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Author{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: born,
		DateOfDeath: died,
	}, nil
}
