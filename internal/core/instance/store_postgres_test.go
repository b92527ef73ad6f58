package instance_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/internal/core/book"
	"github.com/taibuivan/webbooks/internal/core/instance"
	"github.com/taibuivan/webbooks/internal/platform/postgres/pgtest"
	"github.com/taibuivan/webbooks/internal/platform/sec"
	"github.com/taibuivan/webbooks/internal/users/auth"
	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/pagination"
	"github.com/taibuivan/webbooks/pkg/pointer"
	"github.com/taibuivan/webbooks/pkg/uuid"
)

const (
	notAvailable instance.StatusID = 1
	onLoan       instance.StatusID = 2
)

type loanFixture struct {
	repository *instance.PostgresRepository
	service    *instance.Service
	users      *auth.PostgresUserRepository
	bookID     int
}

func setupLoans(t *testing.T) loanFixture {
	pool := pgtest.Open(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	seagull := &book.Book{Title: "The Seagull"}
	require.NoError(t, book.NewPostgresRepository(pool).Create(context.Background(), seagull))

	repository := instance.NewPostgresRepository(pool)
	return loanFixture{
		repository: repository,
		service:    instance.NewService(repository, instance.Codes{Available: onLoan, OnLoan: onLoan}, 10, logger),
		users:      auth.NewUserRepository(pool),
		bookID:     seagull.ID,
	}
}

func (f loanFixture) member(t *testing.T, username string) string {
	t.Helper()
	user := &auth.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         sec.RoleMember,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user.ID
}

func (f loanFixture) lend(t *testing.T, status instance.StatusID, due *date.Date, borrower string) *instance.BookInstance {
	t.Helper()
	copyOf := &instance.BookInstance{
		BookID:   pointer.To(f.bookID),
		Imprint:  "Penguin, 2002",
		StatusID: pointer.To(status),
		DueBack:  due,
	}
	if borrower != "" {
		copyOf.BorrowerID = pointer.To(borrower)
	}
	require.NoError(t, f.repository.Create(context.Background(), copyOf))
	return copyOf
}

/*
TestPostgres_BorrowedOrdering verifies that a member's loans come back by due
date with undated loans last, and that other members' or non-loan copies are
excluded.
*/
func TestPostgres_BorrowedOrdering(t *testing.T) {
	ctx := context.Background()
	f := setupLoans(t)

	reader := f.member(t, "reader")
	other := f.member(t, "other")

	undated := f.lend(t, onLoan, nil, reader)
	later := f.lend(t, onLoan, pointer.To(date.New(2026, 5, 1)), reader)
	sooner := f.lend(t, onLoan, pointer.To(date.New(2026, 3, 1)), reader)
	f.lend(t, notAvailable, pointer.To(date.New(2026, 1, 1)), reader)
	f.lend(t, onLoan, pointer.To(date.New(2026, 2, 1)), other)

	loans, meta, err := f.service.ListBorrowedByUser(ctx, reader, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, loans, 3)

	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, sooner.ID, loans[0].ID)
	assert.Equal(t, later.ID, loans[1].ID)
	assert.Equal(t, undated.ID, loans[2].ID)
	assert.Equal(t, "The Seagull", loans[0].BookTitle)
}

func TestPostgres_CountByStatus(t *testing.T) {
	ctx := context.Background()
	f := setupLoans(t)

	f.lend(t, onLoan, nil, "")
	f.lend(t, onLoan, nil, "")
	f.lend(t, notAvailable, nil, "")

	total, err := f.service.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	loaned, err := f.service.CountByStatus(ctx, onLoan)
	require.NoError(t, err)
	assert.Equal(t, 2, loaned)

	available, err := f.service.CountAvailable(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, available)
}

/*
TestPostgres_DeletingBorrowerKeepsCopy verifies that removing an account only
clears the borrower of the copies it held.
*/
func TestPostgres_DeletingBorrowerKeepsCopy(t *testing.T) {
	ctx := context.Background()
	f := setupLoans(t)

	reader := f.member(t, "reader")
	loan := f.lend(t, onLoan, pointer.To(date.New(2026, 3, 1)), reader)

	require.NoError(t, f.users.Delete(ctx, reader))

	stored, err := f.repository.FindByID(ctx, loan.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.BorrowerID)
	assert.Equal(t, onLoan, *stored.StatusID)
}

func TestPostgres_Statuses(t *testing.T) {
	f := setupLoans(t)

	statuses, err := f.repository.ListStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "Not available", statuses[0].Name)
	assert.Equal(t, "On loan", statuses[1].Name)
}
