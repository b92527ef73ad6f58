// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	// Registers the "postgres" dialect ($n placeholders, double-quoted identifiers).
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/taibuivan/webbooks/pkg/query"
)

// # Criteria Compilation

var dialect = goqu.Dialect("postgres")

// Table describes what the builder may touch in one table.
//
// Fields maps the logical names used in [query.Criteria] onto real columns.
// Anything absent from Fields is rejected, so criteria never reach SQL as
// free text.
type Table struct {
	Name    string // schema-qualified, e.g. "catalog.book"
	Columns []string
	Fields  map[string]string
}

/*
Select compiles criteria into a prepared SELECT over table.Columns.

Parameters:
  - table: Table
  - criteria: query.Criteria

Returns:
  - string: SQL with $n placeholders
  - []any: Positional arguments
  - error: Unknown logical field
*/
func Select(table Table, criteria query.Criteria) (string, []any, error) {
	columns := make([]any, len(table.Columns))
	for i, column := range table.Columns {
		columns[i] = goqu.C(column)
	}

	dataset := dialect.From(tableIdentifier(table.Name)).Prepared(true).Select(columns...)

	where, err := predicates(table, criteria.Where)
	if err != nil {
		return "", nil, err
	}
	if len(where) > 0 {
		dataset = dataset.Where(where...)
	}

	order, err := orderings(table, criteria.OrderBy)
	if err != nil {
		return "", nil, err
	}
	if len(order) > 0 {
		dataset = dataset.Order(order...)
	}

	if criteria.Limit > 0 {
		dataset = dataset.Limit(uint(criteria.Limit))
	}
	if criteria.Offset > 0 {
		dataset = dataset.Offset(uint(criteria.Offset))
	}

	return dataset.ToSQL()
}

// Count compiles the predicates of criteria into a prepared COUNT(*).
// Ordering and window are ignored.
func Count(table Table, criteria query.Criteria) (string, []any, error) {
	dataset := dialect.From(tableIdentifier(table.Name)).Prepared(true).Select(goqu.COUNT(goqu.Star()))

	where, err := predicates(table, criteria.Unbounded().Where)
	if err != nil {
		return "", nil, err
	}
	if len(where) > 0 {
		dataset = dataset.Where(where...)
	}

	return dataset.ToSQL()
}

func predicates(table Table, input []query.Predicate) ([]exp.Expression, error) {
	expressions := make([]exp.Expression, 0, len(input))
	for _, predicate := range input {
		column, err := resolve(table, predicate.Field)
		if err != nil {
			return nil, err
		}

		if predicate.Value == nil {
			expressions = append(expressions, goqu.C(column).IsNull())
			continue
		}
		expressions = append(expressions, goqu.C(column).Eq(predicate.Value))
	}
	return expressions, nil
}

func orderings(table Table, input []query.Order) ([]exp.OrderedExpression, error) {
	expressions := make([]exp.OrderedExpression, 0, len(input))
	for _, order := range input {
		column, err := resolve(table, order.Field)
		if err != nil {
			return nil, err
		}

		ordered := goqu.C(column).Asc()
		if order.Desc {
			ordered = goqu.C(column).Desc()
		}

		if order.NullsLast {
			ordered = ordered.NullsLast()
		}

		expressions = append(expressions, ordered)
	}
	return expressions, nil
}

func resolve(table Table, field string) (string, error) {
	column, ok := table.Fields[field]
	if !ok {
		return "", fmt.Errorf("postgres: unknown field %q for %s", field, table.Name)
	}
	return column, nil
}

// tableIdentifier turns "schema.table" into a quoted goqu identifier.
func tableIdentifier(name string) exp.IdentifierExpression {
	if schemaName, tableName, found := strings.Cut(name, "."); found {
		return goqu.S(schemaName).Table(tableName)
	}
	return goqu.T(name)
}
