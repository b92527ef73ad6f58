package schema

import "github.com/taibuivan/webbooks/internal/platform/constants"

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Username  string
	Email     string
	Password  string
	Role      string
	CreatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     constants.SchemaUsers + ".account",
	ID:        "id",
	Username:  "username",
	Email:     "email",
	Password:  "passwordhash",
	Role:      "role",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.Email, t.Password, t.Role, t.CreatedAt}
}
