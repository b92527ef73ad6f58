// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package query describes read filters as plain data.

Repositories accept a [Criteria] instead of SQL fragments. Field names are
logical (for example "status_id"); each repository maps them onto its own
whitelisted columns before anything reaches the database.

Usage:

	criteria := query.Criteria{
	    Where:   []query.Predicate{query.Eq("borrower_id", userID)},
	    OrderBy: []query.Order{query.Asc("due_back").WithNullsLast()},
	    Limit:   10,
	}
*/
package query

import (
	"strconv"
	"strings"
)

// # Criteria

// Predicate is an equality test on one logical field.
// A nil Value matches rows where the field IS NULL.
type Predicate struct {
	Field string
	Value any
}

// Order sorts by one logical field.
type Order struct {
	Field     string
	Desc      bool
	NullsLast bool
}

// Criteria combines predicates (AND), ordering and an optional window.
// A zero Limit means "no limit".
type Criteria struct {
	Where   []Predicate
	OrderBy []Order
	Limit   int
	Offset  int
}

// Eq builds an equality predicate.
func Eq(field string, value any) Predicate {
	return Predicate{Field: field, Value: value}
}

// Asc builds an ascending order clause.
func Asc(field string) Order {
	return Order{Field: field}
}

// WithNullsLast places NULL values after every other value.
func (o Order) WithNullsLast() Order {
	o.NullsLast = true
	return o
}

// Page returns a copy of c restricted to one window of rows.
func (c Criteria) Page(limit, offset int) Criteria {
	c.Limit = limit
	c.Offset = offset
	return c
}

// Unbounded returns a copy of c without ordering or window. [postgres.Count] compiles
// only what it keeps.
func (c Criteria) Unbounded() Criteria {
	return Criteria{Where: c.Where}
}

// # Query String Helpers

// IntSlice parses a slice of string values from URL query parameters
// into a slice of integers. Comma separated entries are split, and
// invalid entries are ignored.
func IntSlice(vals []string) []int {
	var res []int
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if i, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				res = append(res, i)
			}
		}
	}
	return res
}
