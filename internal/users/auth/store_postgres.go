// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/database/schema"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/sec"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

var selectUser = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.UserAccount.Columns(), ", "), schema.UserAccount.Table,
)

/*
Create persists a new user record into the users.account table.

Unique violations are reported per identity so the client knows which field
to change.
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	statement := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.Username,
		schema.UserAccount.Email, schema.UserAccount.Password, schema.UserAccount.Role,
		schema.UserAccount.CreatedAt,
	)

	err := repository.pool.QueryRow(context, statement,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case "uq_account_username":
			return apperr.Conflict("Username is already taken")
		case "uq_account_email":
			return apperr.Conflict("Email is already registered")
		}
	}
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	statement := selectUser + fmt.Sprintf(` WHERE %s = $1`, schema.UserAccount.ID)
	return repository.findOne(context, statement, id)
}

// FindByLogin matches either identity; both are stored normalized.
func (repository *PostgresUserRepository) FindByLogin(context context.Context, login string) (*User, error) {
	statement := selectUser + fmt.Sprintf(` WHERE %s = $1 OR %s = $1`,
		schema.UserAccount.Username, schema.UserAccount.Email,
	)
	return repository.findOne(context, statement, login)
}

func (repository *PostgresUserRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.pool.QueryRow(context, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.UserAccount.Table)).Scan(&total)
	return total, dberr.Wrap(err, "count_users")
}

func (repository *PostgresUserRepository) UpdateRole(context context.Context, id string, role sec.UserRole) error {
	statement := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.Role, schema.UserAccount.ID,
	)

	cmd, err := repository.pool.Exec(context, statement, id, role)
	if err != nil {
		return dberr.Wrap(err, "update_user_role")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/*
Delete physically removes an account.

The borrower column of every copy the account had on loan is cleared by the
ON DELETE SET NULL foreign key.
*/
func (repository *PostgresUserRepository) Delete(context context.Context, id string) error {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserAccount.Table, schema.UserAccount.ID)

	cmd, err := repository.pool.Exec(context, statement, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresUserRepository) findOne(context context.Context, statement string, argument any) (*User, error) {
	rows, err := repository.pool.Query(context, statement, argument)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user")
	}

	user, err := pgx.CollectExactlyOneRow(rows, scanUser)
	return user, dberr.Wrap(err, "find_user")
}

func scanUser(row pgx.CollectableRow) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	return &user, err
}
