package language

import (
	"context"

	"github.com/taibuivan/webbooks/pkg/query"
)

// Repository defines the data access contract for languages.
type Repository interface {
	FindByID(context context.Context, id int) (*Language, error)
	ListBy(context context.Context, criteria query.Criteria) ([]*Language, error)
	Count(context context.Context, criteria query.Criteria) (int, error)
	Create(context context.Context, language *Language) error

	// Delete removes the language. Books written in it are removed by the database.
	Delete(context context.Context, id int) error
}
