package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/webbooks/internal/core/genre"
	"github.com/taibuivan/webbooks/internal/core/instance"
	"github.com/taibuivan/webbooks/internal/core/language"
	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/validate"
	"github.com/taibuivan/webbooks/pkg/pagination"
	"github.com/taibuivan/webbooks/pkg/query"
	"github.com/taibuivan/webbooks/pkg/slice"
)

const resource = "Book"

var defaultOrder = []query.Order{query.Asc("title"), query.Asc("id")}

// # Collaborators

// GenreFinder resolves a book's genre.
type GenreFinder interface {
	GetGenre(ctx context.Context, id int) (*genre.Genre, error)
}

// LanguageFinder resolves a book's language.
type LanguageFinder interface {
	GetLanguage(ctx context.Context, id int) (*language.Language, error)
}

// InstanceLister lists the copies of a book.
type InstanceLister interface {
	ListForBook(ctx context.Context, bookID int) ([]*instance.View, error)
}

type Service struct {
	repo      Repository
	genres    GenreFinder
	languages LanguageFinder
	instances InstanceLister
	pageSize  int
	logger    *slog.Logger
}

func NewService(repo Repository, genres GenreFinder, languages LanguageFinder, instances InstanceLister, pageSize int, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		genres:    genres,
		languages: languages,
		instances: instances,
		pageSize:  pageSize,
		logger:    logger,
	}
}

// PageSize is the number of books per listing page.
func (service *Service) PageSize() int {
	return service.pageSize
}

// # Reads

// CountAll returns the number of books in the catalog.
func (service *Service) CountAll(context context.Context) (int, error) {
	return service.repo.Count(context, query.Criteria{})
}

// ListBooksPage returns one page of books by title, each with its author byline.
func (service *Service) ListBooksPage(context context.Context, params pagination.Params) ([]*Listing, pagination.Meta, error) {
	total, err := service.repo.Count(context, query.Criteria{})
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	meta, err := params.Meta(total)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	books, err := service.repo.ListBy(context, query.Criteria{OrderBy: defaultOrder}.Page(meta.Limit, meta.Offset()))
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if err := service.attachAuthors(context, books); err != nil {
		return nil, pagination.Meta{}, err
	}

	return slice.Map(books, newListing), meta, nil
}

/*
GetBook returns a book with its genre, language, authors and copies resolved.

Returns:
  - *Detail: The assembled book
  - error: apperr.NotFound("Book") if the id is unknown
*/
func (service *Service) GetBook(context context.Context, id int) (*Detail, error) {
	book, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, resource)
	}

	if err := service.attachAuthors(context, []*Book{book}); err != nil {
		return nil, err
	}

	detail := &Detail{Listing: newListing(book)}

	if book.GenreID != nil {
		if detail.Genre, err = service.genres.GetGenre(context, *book.GenreID); optional(err) != nil {
			return nil, err
		}
	}

	if book.LanguageID != nil {
		if detail.Language, err = service.languages.GetLanguage(context, *book.LanguageID); optional(err) != nil {
			return nil, err
		}
	}

	if detail.Instances, err = service.instances.ListForBook(context, book.ID); err != nil {
		return nil, err
	}
	if detail.Instances == nil {
		detail.Instances = []*instance.View{}
	}

	return detail, nil
}

// # Writes

func (service *Service) CreateBook(context context.Context, input Input) (*Book, error) {
	book, err := input.toBook()
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.Int("book_id", book.ID),
		slog.String("title", book.Title),
		slog.Int("author_count", len(book.AuthorIDs)),
	)
	return book, nil
}

// UpdateBook overwrites the book and replaces its author credits.
func (service *Service) UpdateBook(context context.Context, id int, input Input) (*Book, error) {
	book, err := input.toBook()
	if err != nil {
		return nil, err
	}
	book.ID = id

	if err := service.repo.Update(context, book); err != nil {
		return nil, dberr.NotFound(err, resource)
	}

	service.logger.Info("book_updated", slog.Int("book_id", book.ID))
	return book, nil
}

// DeleteBook removes a book together with all of its copies.
func (service *Service) DeleteBook(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return dberr.NotFound(err, resource)
	}

	service.logger.Warn("book_deleted", slog.Int("book_id", id))
	return nil
}

// # Helpers

// attachAuthors loads the credits of every book with one repository call.
func (service *Service) attachAuthors(context context.Context, books []*Book) error {
	if len(books) == 0 {
		return nil
	}

	credited, err := service.repo.Authors(context, slice.Map(books, func(book *Book) int { return book.ID }))
	if err != nil {
		return err
	}

	for _, book := range books {
		book.Authors = credited[book.ID]
		book.AuthorIDs = make([]int, 0, len(book.Authors))
		for _, a := range book.Authors {
			book.AuthorIDs = append(book.AuthorIDs, a.ID)
		}
	}
	return nil
}

// optional treats a dangling reference as absent.
func optional(err error) error {
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return nil
	}
	return err
}

// toBook normalizes and validates the raw input and converts it into a [Book].
func (input Input) toBook() (*Book, error) {
	input.normalize()

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, MaxTitleLength)
	validator.MaxLen(FieldSummary, input.Summary, MaxSummaryLength)
	validator.MaxLen(FieldISBN, input.ISBN, MaxISBNLength)
	validator.Positive(FieldGenreID, input.GenreID)
	validator.Positive(FieldLanguageID, input.LanguageID)

	for _, authorID := range input.AuthorIDs {
		if authorID < 1 {
			validator.Custom(FieldAuthorIDs, true, fmt.Sprintf("Invalid author id %d", authorID))
		}
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	authorIDs := slice.Unique(input.AuthorIDs)
	if authorIDs == nil {
		authorIDs = []int{}
	}

	return &Book{
		Title:      input.Title,
		GenreID:    input.GenreID,
		LanguageID: input.LanguageID,
		AuthorIDs:  authorIDs,
		Summary:    input.Summary,
		ISBN:       input.ISBN,
	}, nil
}
