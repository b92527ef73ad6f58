package book

import (
	"net/url"
	"strings"

	"github.com/taibuivan/webbooks/internal/core/author"
	"github.com/taibuivan/webbooks/internal/core/genre"
	"github.com/taibuivan/webbooks/internal/core/instance"
	"github.com/taibuivan/webbooks/internal/core/language"
	"github.com/taibuivan/webbooks/pkg/convert"
	"github.com/taibuivan/webbooks/pkg/normalize"
	"github.com/taibuivan/webbooks/pkg/query"
)

// Book is a title in the catalog, independent of how many copies exist.
type Book struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	GenreID    *int   `json:"genre_id"`
	LanguageID *int   `json:"language_id"`

	// AuthorIDs is ordered by credit position.
	AuthorIDs []int  `json:"author_ids"`
	Summary   string `json:"summary"`
	ISBN      string `json:"isbn"`

	Authors []*author.Author `json:"authors"`
}

// DisplayAuthors joins the last names of the credited authors with ", ".
func (book *Book) DisplayAuthors() string {
	names := make([]string, 0, len(book.Authors))
	for _, credited := range book.Authors {
		names = append(names, credited.LastName)
	}
	return strings.Join(names, ", ")
}

// Listing is a book as shown in the paginated catalog.
type Listing struct {
	*Book
	DisplayAuthors string `json:"display_authors"`
}

func newListing(book *Book) *Listing {
	return &Listing{Book: book, DisplayAuthors: book.DisplayAuthors()}
}

// Detail is a book with every reference resolved and its copies attached.
type Detail struct {
	*Listing
	Genre     *genre.Genre       `json:"genre"`
	Language  *language.Language `json:"language"`
	Instances []*instance.View   `json:"instances"`
}

// Input is the typed create/update payload.
type Input struct {
	Title      string `json:"title"`
	GenreID    *int   `json:"genre_id"`
	LanguageID *int   `json:"language_id"`
	AuthorIDs  []int  `json:"author_ids"`
	Summary    string `json:"summary"`
	ISBN       string `json:"isbn"`
}

// BindForm implements requestutil.FormBinder. Authors may be sent as repeated
// author_ids fields or as one comma separated value.
func (input *Input) BindForm(values url.Values) error {
	input.Title = values.Get(FieldTitle)
	input.GenreID = convert.ToIntPtr(values.Get(FieldGenreID))
	input.LanguageID = convert.ToIntPtr(values.Get(FieldLanguageID))
	input.AuthorIDs = query.IntSlice(values[FieldAuthorIDs])
	input.Summary = values.Get(FieldSummary)
	input.ISBN = values.Get(FieldISBN)
	return nil
}

func (input *Input) normalize() {
	input.Title = normalize.Text(input.Title)
	input.Summary = normalize.Block(input.Summary)
	input.ISBN = normalize.Code(input.ISBN)
}

// Global field names and limits for validation
const (
	FieldTitle      = "title"
	FieldGenreID    = "genre_id"
	FieldLanguageID = "language_id"
	FieldAuthorIDs  = "author_ids"
	FieldSummary    = "summary"
	FieldISBN       = "isbn"

	MaxTitleLength   = 200
	MaxSummaryLength = 1000
	MaxISBNLength    = 13
)
