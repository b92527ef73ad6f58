package schema

// BookTable represents the 'catalog.book' table
type BookTable struct {
	Table      string
	ID         string
	Title      string
	GenreID    string
	LanguageID string
	Summary    string
	ISBN       string
}

// Book is the schema definition for catalog.book
var Book = BookTable{
	Table:      qualified("book"),
	ID:         "id",
	Title:      "title",
	GenreID:    "genreid",
	LanguageID: "languageid",
	Summary:    "summary",
	ISBN:       "isbn",
}

// Columns returns all standard column names
func (t BookTable) Columns() []string {
	return []string{t.ID, t.Title, t.GenreID, t.LanguageID, t.Summary, t.ISBN}
}

// Fields maps logical filter fields to columns
func (t BookTable) Fields() map[string]string {
	return map[string]string{
		"id":          t.ID,
		"title":       t.Title,
		"genre_id":    t.GenreID,
		"language_id": t.LanguageID,
		"isbn":        t.ISBN,
	}
}
