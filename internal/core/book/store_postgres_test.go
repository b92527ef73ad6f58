package book_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/internal/core/author"
	"github.com/taibuivan/webbooks/internal/core/book"
	"github.com/taibuivan/webbooks/internal/core/genre"
	"github.com/taibuivan/webbooks/internal/core/instance"
	"github.com/taibuivan/webbooks/internal/core/language"
	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/internal/platform/postgres/pgtest"
	"github.com/taibuivan/webbooks/pkg/pointer"
	"github.com/taibuivan/webbooks/pkg/query"
)

type fixture struct {
	books     *book.PostgresRepository
	authors   *author.PostgresRepository
	genres    *genre.PostgresRepository
	languages *language.PostgresRepository
	instances *instance.PostgresRepository
}

func setup(t *testing.T) fixture {
	pool := pgtest.Open(t)
	return fixture{
		books:     book.NewPostgresRepository(pool),
		authors:   author.NewPostgresRepository(pool),
		genres:    genre.NewPostgresRepository(pool),
		languages: language.NewPostgresRepository(pool),
		instances: instance.NewPostgresRepository(pool),
	}
}

func TestPostgres_CreditsKeepOrder(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	chekhov := &author.Author{FirstName: "Anton", LastName: "Chekhov"}
	tolstoy := &author.Author{FirstName: "Leo", LastName: "Tolstoy"}
	require.NoError(t, f.authors.Create(ctx, chekhov))
	require.NoError(t, f.authors.Create(ctx, tolstoy))

	anthology := &book.Book{Title: "Russian Stories", AuthorIDs: []int{tolstoy.ID, chekhov.ID}}
	require.NoError(t, f.books.Create(ctx, anthology))

	credits, err := f.books.Authors(ctx, []int{anthology.ID})
	require.NoError(t, err)
	require.Len(t, credits[anthology.ID], 2)
	assert.Equal(t, "Tolstoy", credits[anthology.ID][0].LastName)
	assert.Equal(t, "Chekhov", credits[anthology.ID][1].LastName)

	// Updating replaces the credit list
	anthology.AuthorIDs = []int{chekhov.ID}
	require.NoError(t, f.books.Update(ctx, anthology))

	credits, err = f.books.Authors(ctx, []int{anthology.ID})
	require.NoError(t, err)
	require.Len(t, credits[anthology.ID], 1)
	assert.Equal(t, chekhov.ID, credits[anthology.ID][0].ID)
}

func TestPostgres_UpdateMissingBook(t *testing.T) {
	f := setup(t)

	err := f.books.Update(context.Background(), &book.Book{ID: 404, Title: "Ghost"})
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestPostgres_UnknownAuthorIsRejected(t *testing.T) {
	f := setup(t)

	err := f.books.Create(context.Background(), &book.Book{Title: "Orphan", AuthorIDs: []int{999}})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestPostgres_DeletingAuthorKeepsBooks verifies that removing an author only
drops its credits.
*/
func TestPostgres_DeletingAuthorKeepsBooks(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	chekhov := &author.Author{FirstName: "Anton", LastName: "Chekhov"}
	require.NoError(t, f.authors.Create(ctx, chekhov))

	seagull := &book.Book{Title: "The Seagull", AuthorIDs: []int{chekhov.ID}}
	require.NoError(t, f.books.Create(ctx, seagull))

	require.NoError(t, f.authors.Delete(ctx, chekhov.ID))

	_, err := f.books.FindByID(ctx, seagull.ID)
	require.NoError(t, err)

	credits, err := f.books.Authors(ctx, []int{seagull.ID})
	require.NoError(t, err)
	assert.Empty(t, credits[seagull.ID])
}

/*
TestPostgres_DeletingGenreRemovesBooks verifies the cascade from a genre to its
books and from the books to their copies.
*/
func TestPostgres_DeletingGenreRemovesBooks(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	drama := &genre.Genre{Name: "Drama"}
	require.NoError(t, f.genres.Create(ctx, drama))
	russian := &language.Language{Name: "Russian"}
	require.NoError(t, f.languages.Create(ctx, russian))

	seagull := &book.Book{Title: "The Seagull", GenreID: pointer.To(drama.ID), LanguageID: pointer.To(russian.ID)}
	require.NoError(t, f.books.Create(ctx, seagull))

	copyOne := &instance.BookInstance{BookID: pointer.To(seagull.ID), Imprint: "Penguin, 2002"}
	require.NoError(t, f.instances.Create(ctx, copyOne))

	require.NoError(t, f.genres.Delete(ctx, drama.ID))

	_, err := f.books.FindByID(ctx, seagull.ID)
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	remaining, err := f.instances.Count(ctx, query.Criteria{})
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestPostgres_DeletingLanguageRemovesBooks(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	russian := &language.Language{Name: "Russian"}
	require.NoError(t, f.languages.Create(ctx, russian))

	seagull := &book.Book{Title: "The Seagull", LanguageID: pointer.To(russian.ID)}
	require.NoError(t, f.books.Create(ctx, seagull))

	require.NoError(t, f.languages.Delete(ctx, russian.ID))

	count, err := f.books.Count(ctx, query.Criteria{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostgres_DeletingBookRemovesCopies(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	seagull := &book.Book{Title: "The Seagull"}
	require.NoError(t, f.books.Create(ctx, seagull))
	ivanov := &book.Book{Title: "Ivanov"}
	require.NoError(t, f.books.Create(ctx, ivanov))

	require.NoError(t, f.instances.Create(ctx, &instance.BookInstance{BookID: pointer.To(seagull.ID), Imprint: "Penguin, 2002"}))
	require.NoError(t, f.instances.Create(ctx, &instance.BookInstance{BookID: pointer.To(seagull.ID), Imprint: "Oxford, 1998"}))
	kept := &instance.BookInstance{BookID: pointer.To(ivanov.ID), Imprint: "Vintage, 2010"}
	require.NoError(t, f.instances.Create(ctx, kept))

	require.NoError(t, f.books.Delete(ctx, seagull.ID))

	orphans, err := f.instances.Count(ctx, query.Criteria{Where: []query.Predicate{query.Eq("book_id", seagull.ID)}})
	require.NoError(t, err)
	assert.Zero(t, orphans)

	remaining, err := f.instances.Count(ctx, query.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	_, err = f.instances.FindByID(ctx, kept.ID)
	assert.NoError(t, err)
}
