package author

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/webbooks/internal/platform/database/schema"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/postgres"
	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/query"
)

var table = postgres.Table{
	Name:    schema.Author.Table,
	Columns: schema.Author.Columns(),
	Fields:  schema.Author.Fields(),
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Author, error) {
	authors, err := repository.ListBy(context, query.Criteria{Where: []query.Predicate{query.Eq("id", id)}})
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, dberr.ErrNotFound
	}
	return authors[0], nil
}

func (repository *PostgresRepository) ListBy(context context.Context, criteria query.Criteria) ([]*Author, error) {
	authors, err := postgres.SelectRows(context, repository.db, table, criteria, ScanAuthor)
	return authors, dberr.Wrap(err, "list_authors")
}

func (repository *PostgresRepository) Count(context context.Context, criteria query.Criteria) (int, error) {
	total, err := postgres.CountRows(context, repository.db, table, criteria)
	return total, dberr.Wrap(err, "count_authors")
}

func (repository *PostgresRepository) Create(context context.Context, author *Author) error {
	statement := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.Author.Table, schema.Author.FirstName, schema.Author.LastName,
		schema.Author.DateOfBirth, schema.Author.DateOfDeath,
		schema.Author.ID,
	)

	err := repository.db.QueryRow(context, statement,
		author.FirstName, author.LastName, date.TimeOf(author.DateOfBirth), date.TimeOf(author.DateOfDeath),
	).Scan(&author.ID)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) Update(context context.Context, author *Author) error {
	statement := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.Author.Table, schema.Author.FirstName, schema.Author.LastName,
		schema.Author.DateOfBirth, schema.Author.DateOfDeath, schema.Author.ID,
	)

	cmd, err := repository.db.Exec(context, statement,
		author.ID, author.FirstName, author.LastName, date.TimeOf(author.DateOfBirth), date.TimeOf(author.DateOfDeath),
	)
	if err != nil {
		return dberr.Wrap(err, "update_author")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Author.Table, schema.Author.ID)

	cmd, err := repository.db.Exec(context, statement, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// ScanAuthor reads one row in [schema.AuthorTable.Columns] order.
// Other repositories joining the author table reuse it.
func ScanAuthor(row pgx.CollectableRow) (*Author, error) {
	var author Author
	var born, deceased *time.Time

	if err := row.Scan(&author.ID, &author.FirstName, &author.LastName, &born, &deceased); err != nil {
		return nil, err
	}

	author.DateOfBirth = date.FromTime(born)
	author.DateOfDeath = date.FromTime(deceased)
	return &author, nil
}
