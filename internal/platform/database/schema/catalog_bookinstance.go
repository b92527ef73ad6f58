package schema

// BookInstanceTable represents the 'catalog.bookinstance' table
type BookInstanceTable struct {
	Table           string
	ID              string
	BookID          string
	InventoryNumber string
	Imprint         string
	StatusID        string
	DueBack         string
	BorrowerID      string
}

// BookInstance is the schema definition for catalog.bookinstance
var BookInstance = BookInstanceTable{
	Table:           qualified("bookinstance"),
	ID:              "id",
	BookID:          "bookid",
	InventoryNumber: "inventorynumber",
	Imprint:         "imprint",
	StatusID:        "statusid",
	DueBack:         "dueback",
	BorrowerID:      "borrowerid",
}

// Columns returns all standard column names
func (t BookInstanceTable) Columns() []string {
	return []string{t.ID, t.BookID, t.InventoryNumber, t.Imprint, t.StatusID, t.DueBack, t.BorrowerID}
}

// Fields maps logical filter fields to columns
func (t BookInstanceTable) Fields() map[string]string {
	return map[string]string{
		"id":          t.ID,
		"book_id":     t.BookID,
		"status_id":   t.StatusID,
		"due_back":    t.DueBack,
		"borrower_id": t.BorrowerID,
	}
}
