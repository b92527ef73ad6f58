package instance

import (
	"context"
	"log/slog"

	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/validate"
	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/pagination"
	"github.com/taibuivan/webbooks/pkg/pointer"
	"github.com/taibuivan/webbooks/pkg/query"
	"github.com/taibuivan/webbooks/pkg/slice"
)

const resource = "Book instance"

// defaultOrder puts the copies due back soonest first and the ones without a
// due date last.
var defaultOrder = []query.Order{query.Asc("due_back").WithNullsLast(), query.Asc("id")}

type Service struct {
	repo             Repository
	codes            Codes
	borrowedPageSize int
	today            func() date.Date
	logger           *slog.Logger
}

func NewService(repo Repository, codes Codes, borrowedPageSize int, logger *slog.Logger) *Service {
	return &Service{
		repo:             repo,
		codes:            codes,
		borrowedPageSize: borrowedPageSize,
		today:            date.Today,
		logger:           logger,
	}
}

// BorrowedPageSize is the number of copies per page of a member's loans.
func (service *Service) BorrowedPageSize() int {
	return service.borrowedPageSize
}

// # Counters

// CountAll returns the number of copies in the catalog.
func (service *Service) CountAll(context context.Context) (int, error) {
	return service.repo.Count(context, query.Criteria{})
}

// CountByStatus returns the number of copies currently in the given status.
func (service *Service) CountByStatus(context context.Context, status StatusID) (int, error) {
	return service.repo.Count(context, query.Criteria{
		Where: []query.Predicate{query.Eq("status_id", int(status))},
	})
}

// CountAvailable returns the number of copies in the configured available status.
func (service *Service) CountAvailable(context context.Context) (int, error) {
	return service.CountByStatus(context, service.codes.Available)
}

// # Reads

/*
ListBorrowedByUser returns one page of the copies a member currently has on loan.

Only copies in the configured on-loan status count; the ones due back soonest
come first and copies without a due date come last. Results are never cached.

Parameters:
  - context: context.Context
  - userID: string (borrower UUID)
  - params: pagination.Params

Returns:
  - []*View: Loans with overdue flags evaluated against today
  - pagination.Meta: Paging metadata
  - error: NotFound for pages past the end
*/
func (service *Service) ListBorrowedByUser(context context.Context, userID string, params pagination.Params) ([]*View, pagination.Meta, error) {
	criteria := query.Criteria{
		Where: []query.Predicate{
			query.Eq("borrower_id", userID),
			query.Eq("status_id", int(service.codes.OnLoan)),
		},
		OrderBy: defaultOrder,
	}

	total, err := service.repo.Count(context, criteria)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	meta, err := params.Meta(total)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	instances, err := service.repo.ListBy(context, criteria.Page(meta.Limit, meta.Offset()))
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	views, err := service.views(context, instances)
	return views, meta, err
}

// ListForBook returns every copy of a book in due-back order.
func (service *Service) ListForBook(context context.Context, bookID int) ([]*View, error) {
	instances, err := service.repo.ListBy(context, query.Criteria{
		Where:   []query.Predicate{query.Eq("book_id", bookID)},
		OrderBy: defaultOrder,
	})
	if err != nil {
		return nil, err
	}
	return service.views(context, instances)
}

// ListInstances returns every copy in the catalog in due-back order.
func (service *Service) ListInstances(context context.Context) ([]*View, error) {
	instances, err := service.repo.ListBy(context, query.Criteria{OrderBy: defaultOrder})
	if err != nil {
		return nil, err
	}
	return service.views(context, instances)
}

func (service *Service) GetInstance(context context.Context, id int) (*View, error) {
	instance, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, resource)
	}

	views, err := service.views(context, []*BookInstance{instance})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (service *Service) ListStatuses(context context.Context) ([]*Status, error) {
	return service.repo.ListStatuses(context)
}

// # Writes

func (service *Service) CreateInstance(context context.Context, input Input) (*BookInstance, error) {
	instance, err := input.toInstance()
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, instance); err != nil {
		return nil, err
	}

	service.logger.Info("instance_created", slog.Int("instance_id", instance.ID))
	return instance, nil
}

// UpdateInstance overwrites every field of a copy, which is how it is lent
// out (status, due date, borrower) or returned.
func (service *Service) UpdateInstance(context context.Context, id int, input Input) (*BookInstance, error) {
	instance, err := input.toInstance()
	if err != nil {
		return nil, err
	}
	instance.ID = id

	if err := service.repo.Update(context, instance); err != nil {
		return nil, dberr.NotFound(err, resource)
	}

	service.logger.Info("instance_updated",
		slog.Int("instance_id", instance.ID),
		slog.String("borrower_id", pointer.Val(instance.BorrowerID)),
	)
	return instance, nil
}

func (service *Service) DeleteInstance(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return dberr.NotFound(err, resource)
	}

	service.logger.Warn("instance_deleted", slog.Int("instance_id", id))
	return nil
}

// views attaches book titles and evaluates every copy against today.
func (service *Service) views(context context.Context, instances []*BookInstance) ([]*View, error) {
	var bookIDs []int
	for _, instance := range instances {
		if instance.BookID != nil {
			bookIDs = append(bookIDs, *instance.BookID)
		}
	}

	titles, err := service.repo.BookTitles(context, slice.Unique(bookIDs))
	if err != nil {
		return nil, err
	}

	today := service.today()
	return slice.Map(instances, func(instance *BookInstance) *View {
		if instance.BookID != nil {
			instance.BookTitle = titles[*instance.BookID]
		}
		return NewView(instance, today)
	}), nil
}

// toInstance normalizes and validates the raw input.
func (input Input) toInstance() (*BookInstance, error) {
	input.normalize()

	validator := &validate.Validator{}
	validator.Positive(FieldBookID, input.BookID)
	validator.MaxLen(FieldInventoryNumber, input.InventoryNumber, MaxInventoryNumberLength)
	validator.Required(FieldImprint, input.Imprint).MaxLen(FieldImprint, input.Imprint, MaxImprintLength)
	validator.Custom(FieldStatusID, input.StatusID != nil && *input.StatusID < 1, validate.MessagePositiveID)
	validator.UUID(FieldBorrowerID, input.BorrowerID)

	var dueBack *date.Date
	validator.Date(FieldDueBack, input.DueBack, &dueBack)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	instance := &BookInstance{
		BookID:   input.BookID,
		Imprint:  input.Imprint,
		StatusID: input.StatusID,
		DueBack:  dueBack,
	}
	if input.InventoryNumber != "" {
		instance.InventoryNumber = pointer.To(input.InventoryNumber)
	}
	if input.BorrowerID != "" {
		instance.BorrowerID = pointer.To(input.BorrowerID)
	}
	return instance, nil
}
