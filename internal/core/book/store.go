package book

import (
	"context"

	"github.com/taibuivan/webbooks/internal/core/author"
	"github.com/taibuivan/webbooks/pkg/query"
)

// Repository defines the data access contract for books and their author credits.
type Repository interface {
	FindByID(context context.Context, id int) (*Book, error)
	ListBy(context context.Context, criteria query.Criteria) ([]*Book, error)
	Count(context context.Context, criteria query.Criteria) (int, error)

	// Create and Update write the row and replace its author credits atomically.
	Create(context context.Context, book *Book) error
	Update(context context.Context, book *Book) error

	// Delete removes the book. Its copies are removed by the database.
	Delete(context context.Context, id int) error

	// Authors returns the credited authors of each book in credit order.
	Authors(context context.Context, bookIDs []int) (map[int][]*author.Author, error)
}
