// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements library accounts: the members who borrow copies and
the staff who run the catalog.

It covers registration, password login with RS256 access tokens, and the
administrative account operations (role changes and removal).

# Architecture

  - Service: Registration, login and role management rules.
  - Repository: users.account in PostgreSQL.
  - Security: bcrypt password hashes and RSA-signed JWTs from [sec].
*/
package auth

import (
	"time"

	"github.com/taibuivan/webbooks/internal/platform/sec"
	"github.com/taibuivan/webbooks/pkg/normalize"
)

// # Domain Entities

// User is a library account. Copies on loan reference it as their borrower.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// # Inputs

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (input *RegisterInput) normalize() {
	input.Username = normalize.Identity(input.Username)
	input.Email = normalize.Identity(input.Email)
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string `json:"login"` // Username or email
	Password string `json:"password"`
}

// RoleInput is the payload of a role change.
type RoleInput struct {
	Role sec.UserRole `json:"role"`
}

// LoginSession is a successful login: the bearer token and who it belongs to.
type LoginSession struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        *User  `json:"user"`
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldLogin    = "login"
	FieldRole     = "role"
)
