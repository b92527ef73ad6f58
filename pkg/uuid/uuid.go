// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers.

It wraps google/uuid to generate Version 7 values. They are used for user
account keys and visitor session ids.

Advantages:

  - Sortable: Naturally ordered by creation time (millisecond precision).
  - Friendly: Prevents index fragmentation in PostgreSQL (B-tree optimal).
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
//
// It falls back to a random (v4) id if the clock-based generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s is a well-formed UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
