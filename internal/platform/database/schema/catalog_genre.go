package schema

// GenreTable represents the 'catalog.genre' table
type GenreTable struct {
	Table string
	ID    string
	Name  string
}

// Genre is the schema definition for catalog.genre
var Genre = GenreTable{
	Table: qualified("genre"),
	ID:    "id",
	Name:  "name",
}

// Columns returns all standard column names
func (t GenreTable) Columns() []string {
	return []string{t.ID, t.Name}
}

// Fields maps logical filter fields to columns
func (t GenreTable) Fields() map[string]string {
	return map[string]string{"id": t.ID, "name": t.Name}
}
