// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, including account removal
	RoleAdmin UserRole = "admin"

	// Maintains genres, languages, and the physical copies on the shelves
	RoleLibrarian UserRole = "librarian"

	// Default role for registered readers (borrowers)
	RoleMember UserRole = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleLibrarian:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
