// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/internal/platform/postgres"
	"github.com/taibuivan/webbooks/pkg/query"
)

var instances = postgres.Table{
	Name:    "catalog.bookinstance",
	Columns: []string{"id", "dueback"},
	Fields: map[string]string{
		"id":          "id",
		"status_id":   "statusid",
		"due_back":    "dueback",
		"borrower_id": "borrowerid",
	},
}

func TestSelect(t *testing.T) {
	sql, args, err := postgres.Select(instances, query.Criteria{
		Where: []query.Predicate{
			query.Eq("borrower_id", "user-1"),
			query.Eq("status_id", 2),
		},
		OrderBy: []query.Order{query.Asc("due_back").WithNullsLast(), query.Asc("id")},
		Limit:   10,
		Offset:  20,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, `SELECT "id", "dueback" FROM "catalog"."bookinstance"`), sql)
	assert.Contains(t, sql, `"borrowerid" = $1`)
	assert.Contains(t, sql, `"statusid" = $2`)
	assert.Contains(t, sql, `ORDER BY "dueback" ASC NULLS LAST, "id" ASC`)
	assert.Contains(t, sql, `LIMIT $3 OFFSET $4`)

	require.Len(t, args, 4)
	assert.Equal(t, "user-1", args[0])
	assert.EqualValues(t, 2, args[1])
}

func TestSelect_NullPredicate(t *testing.T) {
	sql, args, err := postgres.Select(instances, query.Criteria{
		Where: []query.Predicate{query.Eq("borrower_id", nil)},
	})
	require.NoError(t, err)

	assert.Contains(t, sql, `"borrowerid" IS NULL`)
	assert.Empty(t, args)
}

func TestCount(t *testing.T) {
	sql, args, err := postgres.Count(instances, query.Criteria{
		Where:   []query.Predicate{query.Eq("status_id", 2)},
		OrderBy: []query.Order{query.Asc("id")},
		Limit:   5,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, `SELECT COUNT(*) FROM "catalog"."bookinstance"`), sql)
	assert.Contains(t, sql, `"statusid" = $1`)
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	require.Len(t, args, 1)
	assert.EqualValues(t, 2, args[0])
}

func TestSelect_RejectsUnknownField(t *testing.T) {
	_, _, err := postgres.Select(instances, query.Criteria{
		Where: []query.Predicate{query.Eq("imprint; DROP TABLE", 1)},
	})
	assert.Error(t, err)

	_, _, err = postgres.Select(instances, query.Criteria{
		OrderBy: []query.Order{{Field: "nope", Desc: true}},
	})
	assert.Error(t, err)
}
