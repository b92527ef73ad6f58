package schema

// BookAuthorTable represents the 'catalog.bookauthor' junction table
type BookAuthorTable struct {
	Table    string
	BookID   string
	AuthorID string
	Position string
}

// BookAuthor is the schema definition for catalog.bookauthor
var BookAuthor = BookAuthorTable{
	Table:    qualified("bookauthor"),
	BookID:   "bookid",
	AuthorID: "authorid",
	Position: "position",
}
