package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/webbooks/internal/core/author"
	"github.com/taibuivan/webbooks/internal/platform/database/schema"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/postgres"
	"github.com/taibuivan/webbooks/pkg/query"
	"github.com/taibuivan/webbooks/pkg/slice"
)

var table = postgres.Table{
	Name:    schema.Book.Table,
	Columns: schema.Book.Columns(),
	Fields:  schema.Book.Fields(),
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Book, error) {
	books, err := repository.ListBy(context, query.Criteria{Where: []query.Predicate{query.Eq("id", id)}})
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, dberr.ErrNotFound
	}
	return books[0], nil
}

func (repository *PostgresRepository) ListBy(context context.Context, criteria query.Criteria) ([]*Book, error) {
	books, err := postgres.SelectRows(context, repository.db, table, criteria, scanBook)
	return books, dberr.Wrap(err, "list_books")
}

func (repository *PostgresRepository) Count(context context.Context, criteria query.Criteria) (int, error) {
	total, err := postgres.CountRows(context, repository.db, table, criteria)
	return total, dberr.Wrap(err, "count_books")
}

func (repository *PostgresRepository) Create(context context.Context, book *Book) error {
	statement := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.Book.Table, schema.Book.Title, schema.Book.GenreID, schema.Book.LanguageID,
		schema.Book.Summary, schema.Book.ISBN,
		schema.Book.ID,
	)

	err := postgres.InTx(context, repository.db, func(transaction pgx.Tx) error {
		err := transaction.QueryRow(context, statement,
			book.Title, book.GenreID, book.LanguageID, book.Summary, book.ISBN,
		).Scan(&book.ID)
		if err != nil {
			return err
		}
		return replaceCredits(context, transaction, book.ID, book.AuthorIDs)
	})
	return dberr.Wrap(err, "create_book")
}

func (repository *PostgresRepository) Update(context context.Context, book *Book) error {
	statement := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		schema.Book.Table, schema.Book.Title, schema.Book.GenreID, schema.Book.LanguageID,
		schema.Book.Summary, schema.Book.ISBN, schema.Book.ID,
	)

	err := postgres.InTx(context, repository.db, func(transaction pgx.Tx) error {
		cmd, err := transaction.Exec(context, statement,
			book.ID, book.Title, book.GenreID, book.LanguageID, book.Summary, book.ISBN,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return dberr.ErrNotFound
		}
		return replaceCredits(context, transaction, book.ID, book.AuthorIDs)
	})
	return dberr.Wrap(err, "update_book")
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Book.Table, schema.Book.ID)

	cmd, err := repository.db.Exec(context, statement, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/*
Authors loads the credited authors of several books.

The junction rows are read first (credit order, then author id) and the
distinct authors are fetched in a second query, so an author credited on
many books is scanned once.

Returns:
  - map[int][]*author.Author: Keyed by book id; books without credits are absent
  - error: Query failures
*/
func (repository *PostgresRepository) Authors(context context.Context, bookIDs []int) (map[int][]*author.Author, error) {
	credited := make(map[int][]*author.Author, len(bookIDs))
	if len(bookIDs) == 0 {
		return credited, nil
	}

	// 1. Credits in display order
	creditQuery := fmt.Sprintf(`
		SELECT %[1]s, %[2]s FROM %[3]s
		WHERE %[1]s = ANY($1)
		ORDER BY %[1]s, %[4]s, %[2]s
	`, schema.BookAuthor.BookID, schema.BookAuthor.AuthorID, schema.BookAuthor.Table, schema.BookAuthor.Position)

	rows, err := repository.db.Query(context, creditQuery, bookIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_credits")
	}

	type credit struct{ bookID, authorID int }
	credits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (credit, error) {
		var c credit
		err := row.Scan(&c.bookID, &c.authorID)
		return c, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_credits")
	}
	if len(credits) == 0 {
		return credited, nil
	}

	// 2. Distinct authors
	authorIDs := slice.Unique(slice.Map(credits, func(c credit) int { return c.authorID }))

	authorQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = ANY($1)`,
		schema.Author.ID, schema.Author.FirstName, schema.Author.LastName,
		schema.Author.DateOfBirth, schema.Author.DateOfDeath,
		schema.Author.Table, schema.Author.ID,
	)

	rows, err = repository.db.Query(context, authorQuery, authorIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_credited_authors")
	}

	authors, err := pgx.CollectRows(rows, author.ScanAuthor)
	if err != nil {
		return nil, dberr.Wrap(err, "list_credited_authors")
	}

	byID := make(map[int]*author.Author, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}

	// 3. Reassemble per book
	for _, c := range credits {
		if a, ok := byID[c.authorID]; ok {
			credited[c.bookID] = append(credited[c.bookID], a)
		}
	}
	return credited, nil
}

/*
replaceCredits synchronizes the author credits of one book.

The existing rows are cleared and the new list is queued on a single
[pgx.Batch]; the slice index becomes the credit position.
*/
func replaceCredits(context context.Context, transaction pgx.Tx, bookID int, authorIDs []int) error {
	purge := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BookAuthor.Table, schema.BookAuthor.BookID)
	if _, err := transaction.Exec(context, purge, bookID); err != nil {
		return fmt.Errorf("postgres: failed to clear book credits: %w", err)
	}

	if len(authorIDs) == 0 {
		return nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.BookAuthor.Table, schema.BookAuthor.BookID, schema.BookAuthor.AuthorID, schema.BookAuthor.Position,
	)

	batch := &pgx.Batch{}
	for position, authorID := range authorIDs {
		batch.Queue(insert, bookID, authorID, position)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return fmt.Errorf("postgres: failed to insert book credits: %w", err)
	}
	return nil
}

func scanBook(row pgx.CollectableRow) (*Book, error) {
	var book Book
	err := row.Scan(&book.ID, &book.Title, &book.GenreID, &book.LanguageID, &book.Summary, &book.ISBN)
	if err != nil {
		return nil, err
	}
	return &book, nil
}
