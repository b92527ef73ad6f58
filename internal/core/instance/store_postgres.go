package instance

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
	Name:    schema.BookInstance.Table,
	Columns: schema.BookInstance.Columns(),
	Fields:  schema.BookInstance.Fields(),
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*BookInstance, error) {
	instances, err := repository.ListBy(context, query.Criteria{Where: []query.Predicate{query.Eq("id", id)}})
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, dberr.ErrNotFound
	}
	return instances[0], nil
}

func (repository *PostgresRepository) ListBy(context context.Context, criteria query.Criteria) ([]*BookInstance, error) {
	instances, err := postgres.SelectRows(context, repository.db, table, criteria, scanInstance)
	return instances, dberr.Wrap(err, "list_instances")
}

func (repository *PostgresRepository) Count(context context.Context, criteria query.Criteria) (int, error) {
	total, err := postgres.CountRows(context, repository.db, table, criteria)
	return total, dberr.Wrap(err, "count_instances")
}

func (repository *PostgresRepository) Create(context context.Context, instance *BookInstance) error {
	statement := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.BookInstance.Table, schema.BookInstance.BookID, schema.BookInstance.InventoryNumber,
		schema.BookInstance.Imprint, schema.BookInstance.StatusID, schema.BookInstance.DueBack,
		schema.BookInstance.BorrowerID,
		schema.BookInstance.ID,
	)

	err := repository.db.QueryRow(context, statement, arguments(instance)...).Scan(&instance.ID)
	return dberr.Wrap(err, "create_instance")
}

func (repository *PostgresRepository) Update(context context.Context, instance *BookInstance) error {
	statement := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $7
	`,
		schema.BookInstance.Table, schema.BookInstance.BookID, schema.BookInstance.InventoryNumber,
		schema.BookInstance.Imprint, schema.BookInstance.StatusID, schema.BookInstance.DueBack,
		schema.BookInstance.BorrowerID,
		schema.BookInstance.ID,
	)

	cmd, err := repository.db.Exec(context, statement, append(arguments(instance), instance.ID)...)
	if err != nil {
		return dberr.Wrap(err, "update_instance")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BookInstance.Table, schema.BookInstance.ID)

	cmd, err := repository.db.Exec(context, statement, id)
	if err != nil {
		return dberr.Wrap(err, "delete_instance")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListStatuses(context context.Context) ([]*Status, error) {
	statement := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s`,
		schema.Status.ID, schema.Status.Name, schema.Status.Table, schema.Status.ID,
	)

	rows, err := repository.db.Query(context, statement)
	if err != nil {
		return nil, dberr.Wrap(err, "list_statuses")
	}

	statuses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Status, error) {
		var status Status
		err := row.Scan(&status.ID, &status.Name)
		return &status, err
	})
	return statuses, dberr.Wrap(err, "list_statuses")
}

func (repository *PostgresRepository) BookTitles(context context.Context, bookIDs []int) (map[int]string, error) {
	titles := make(map[int]string, len(bookIDs))
	if len(bookIDs) == 0 {
		return titles, nil
	}

	statement := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1)`,
		schema.Book.ID, schema.Book.Title, schema.Book.Table, schema.Book.ID,
	)

	rows, err := repository.db.Query(context, statement, bookIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_titles")
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, dberr.Wrap(err, "scan_book_title")
		}
		titles[id] = title
	}
	return titles, dberr.Wrap(rows.Err(), "list_book_titles")
}

// arguments returns the writable columns in INSERT order.
func arguments(instance *BookInstance) []any {
	var status *int
	if instance.StatusID != nil {
		value := int(*instance.StatusID)
		status = &value
	}

	return []any{
		instance.BookID, instance.InventoryNumber, instance.Imprint,
		status, date.TimeOf(instance.DueBack), instance.BorrowerID,
	}
}

func scanInstance(row pgx.CollectableRow) (*BookInstance, error) {
	var instance BookInstance
	var status *int
	var dueBack *time.Time

	err := row.Scan(
		&instance.ID, &instance.BookID, &instance.InventoryNumber, &instance.Imprint,
		&status, &dueBack, &instance.BorrowerID,
	)
	if err != nil {
		return nil, err
	}

	if status != nil {
		id := StatusID(*status)
		instance.StatusID = &id
	}
	instance.DueBack = date.FromTime(dueBack)
	return &instance, nil
}
