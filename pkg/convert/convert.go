// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] to provide fault-tolerant conversions for query parameters
and form fields. Malformed input becomes a sentinel value instead of an error,
so callers must pick sentinels that cannot collide with real data.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// ToIntPtr converts an optional form field into a nullable integer.
//
// Empty input yields nil (an unset reference). Malformed input yields a
// pointer to 0, which no serial primary key ever matches, so the reference
// check downstream reports it instead of it being silently dropped.
func ToIntPtr(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		v = 0
	}
	return &v
}
