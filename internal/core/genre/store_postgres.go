package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/webbooks/internal/platform/database/schema"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/postgres"
	"github.com/taibuivan/webbooks/pkg/query"
)

var table = postgres.Table{
	Name:    schema.Genre.Table,
	Columns: schema.Genre.Columns(),
	Fields:  schema.Genre.Fields(),
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Genre, error) {
	genres, err := repository.ListBy(context, query.Criteria{Where: []query.Predicate{query.Eq("id", id)}})
	if err != nil {
		return nil, err
	}
	if len(genres) == 0 {
		return nil, dberr.ErrNotFound
	}
	return genres[0], nil
}

func (repository *PostgresRepository) ListBy(context context.Context, criteria query.Criteria) ([]*Genre, error) {
	genres, err := postgres.SelectRows(context, repository.db, table, criteria, pgx.RowToAddrOfStructByPos[Genre])
	return genres, dberr.Wrap(err, "list_genres")
}

func (repository *PostgresRepository) Count(context context.Context, criteria query.Criteria) (int, error) {
	total, err := postgres.CountRows(context, repository.db, table, criteria)
	return total, dberr.Wrap(err, "count_genres")
}

func (repository *PostgresRepository) Create(context context.Context, genre *Genre) error {
	statement := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.Genre.Table, schema.Genre.Name, schema.Genre.ID,
	)

	err := repository.db.QueryRow(context, statement, genre.Name).Scan(&genre.ID)
	return dberr.Wrap(err, "create_genre")
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Genre.Table, schema.Genre.ID)

	cmd, err := repository.db.Exec(context, statement, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
