// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize cleans free-text input before it is validated and stored.
//
// # Usage
//
// Catalog names (author names, titles, genres) arrive from HTML forms and JSON
// clients alike. The same visible string may be encoded in composed or
// decomposed Unicode form, so everything is folded to NFC first. Length
// limits are then enforced on a stable rune count.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text converts s to NFC, trims surrounding whitespace and collapses inner
// runs of whitespace to a single space.
func Text(s string) string {
	// 1. Compose accents (e + combining acute → é)
	result := norm.NFC.String(s)

	// 2. Collapse whitespace runs
	return strings.Join(strings.FieldsFunc(result, unicode.IsSpace), " ")
}

// Block converts s to NFC and trims it, preserving inner line breaks.
// It is meant for multi-line fields such as a book summary.
func Block(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Code converts s to NFC, trims it and upper-cases it (an ISBN check digit
// "x" becomes "X"). Inner characters are kept as submitted, so length limits
// apply to the value as typed.
func Code(s string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFC.String(s)))
}

// Identity lower-cases and trims logins (usernames, emails) so lookups
// are case-insensitive.
func Identity(s string) string {
	return strings.ToLower(Text(s))
}
