package schema

// LanguageTable represents the 'catalog.language' table
type LanguageTable struct {
	Table string
	ID    string
	Name  string
}

// Language is the schema definition for catalog.language
var Language = LanguageTable{
	Table: qualified("language"),
	ID:    "id",
	Name:  "name",
}

// Columns returns all standard column names
func (t LanguageTable) Columns() []string {
	return []string{t.ID, t.Name}
}

// Fields maps logical filter fields to columns
func (t LanguageTable) Fields() map[string]string {
	return map[string]string{"id": t.ID, "name": t.Name}
}
