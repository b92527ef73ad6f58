package author

import (
	"context"

	"github.com/taibuivan/webbooks/pkg/query"
)

// Repository defines the data access contract for authors.
type Repository interface {
	FindByID(context context.Context, id int) (*Author, error)
	ListBy(context context.Context, criteria query.Criteria) ([]*Author, error)
	Count(context context.Context, criteria query.Criteria) (int, error)
	Create(context context.Context, author *Author) error

	// Update overwrites every mutable field; dberr.ErrNotFound if the row is gone.
	Update(context context.Context, author *Author) error

	// Delete removes the author and its book memberships, never the books.
	Delete(context context.Context, id int) error
}
