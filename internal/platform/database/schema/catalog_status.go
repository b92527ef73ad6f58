package schema

// StatusTable represents the 'catalog.status' table
type StatusTable struct {
	Table string
	ID    string
	Name  string
}

// Status is the schema definition for catalog.status
var Status = StatusTable{
	Table: qualified("status"),
	ID:    "id",
	Name:  "name",
}
