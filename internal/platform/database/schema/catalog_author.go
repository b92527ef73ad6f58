package schema

// AuthorTable represents the 'catalog.author' table
type AuthorTable struct {
	Table       string
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth string
	DateOfDeath string
}

// Author is the schema definition for catalog.author
var Author = AuthorTable{
	Table:       qualified("author"),
	ID:          "id",
	FirstName:   "firstname",
	LastName:    "lastname",
	DateOfBirth: "dateofbirth",
	DateOfDeath: "dateofdeath",
}

// Columns returns all standard column names
func (t AuthorTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.DateOfBirth, t.DateOfDeath}
}

// Fields maps logical filter fields to columns
func (t AuthorTable) Fields() map[string]string {
	return map[string]string{
		"id":            t.ID,
		"first_name":    t.FirstName,
		"last_name":     t.LastName,
		"date_of_birth": t.DateOfBirth,
		"date_of_death": t.DateOfDeath,
	}
}
