// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Account Constraints

const (
	MinUsernameLength = 3
	MaxUsernameLength = 150
	MaxEmailLength    = 254

	// MinPasswordLength applies at registration only; login never reveals it.
	MinPasswordLength = 8

	// TokenType is the scheme clients put in front of the access token.
	TokenType = "Bearer"
)
