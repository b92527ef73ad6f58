// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/taibuivan/webbooks/internal/platform/sec"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: dberr.ErrNotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByLogin returns the account whose username or email equals login.

		Parameters:
		  - context: context.Context
		  - login: string (already normalized)

		Returns:
		  - *User: Hydrated entity
		  - error: dberr.ErrNotFound or retrieval failures
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	// Count returns the number of accounts.
	Count(context context.Context) (int, error)

	/*
		Create persists a brand-new account.

		Returns:
		  - error: apperr.Conflict on a taken username or email
	*/
	Create(context context.Context, user *User) error

	// UpdateRole changes the role of an account; dberr.ErrNotFound if it is gone.
	UpdateRole(context context.Context, id string, role sec.UserRole) error

	// Delete removes the account. Copies it borrowed keep no borrower.
	Delete(context context.Context, id string) error
}
