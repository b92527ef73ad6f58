package instance

import (
	"context"

	"github.com/taibuivan/webbooks/pkg/query"
)

// Repository defines the data access contract for book copies and their statuses.
type Repository interface {
	FindByID(context context.Context, id int) (*BookInstance, error)
	ListBy(context context.Context, criteria query.Criteria) ([]*BookInstance, error)
	Count(context context.Context, criteria query.Criteria) (int, error)
	Create(context context.Context, instance *BookInstance) error
	Update(context context.Context, instance *BookInstance) error
	Delete(context context.Context, id int) error

	ListStatuses(context context.Context) ([]*Status, error)

	// BookTitles resolves book ids to titles. Unknown ids are absent from the map.
	BookTitles(context context.Context, bookIDs []int) (map[int]string, error)
}
