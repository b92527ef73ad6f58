package language

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
	Name:    schema.Language.Table,
	Columns: schema.Language.Columns(),
	Fields:  schema.Language.Fields(),
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Language, error) {
	languages, err := repository.ListBy(context, query.Criteria{Where: []query.Predicate{query.Eq("id", id)}})
	if err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		return nil, dberr.ErrNotFound
	}
	return languages[0], nil
}

func (repository *PostgresRepository) ListBy(context context.Context, criteria query.Criteria) ([]*Language, error) {
	languages, err := postgres.SelectRows(context, repository.db, table, criteria, pgx.RowToAddrOfStructByPos[Language])
	return languages, dberr.Wrap(err, "list_languages")
}

func (repository *PostgresRepository) Count(context context.Context, criteria query.Criteria) (int, error) {
	total, err := postgres.CountRows(context, repository.db, table, criteria)
	return total, dberr.Wrap(err, "count_languages")
}

func (repository *PostgresRepository) Create(context context.Context, language *Language) error {
	statement := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.Language.Table, schema.Language.Name, schema.Language.ID,
	)

	err := repository.db.QueryRow(context, statement, language.Name).Scan(&language.ID)
	return dberr.Wrap(err, "create_language")
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Language.Table, schema.Language.ID)

	cmd, err := repository.db.Exec(context, statement, id)
	if err != nil {
		return dberr.Wrap(err, "delete_language")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
