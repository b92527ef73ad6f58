package genre

import (
	"context"

	"github.com/taibuivan/webbooks/pkg/query"
)

// Repository defines the data access contract for genres.
type Repository interface {
	FindByID(context context.Context, id int) (*Genre, error)
	ListBy(context context.Context, criteria query.Criteria) ([]*Genre, error)
	Count(context context.Context, criteria query.Criteria) (int, error)
	Create(context context.Context, genre *Genre) error

	// Delete removes the genre. Books filed under it are removed by the database.
	Delete(context context.Context, id int) error
}
