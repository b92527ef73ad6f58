// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/webbooks/pkg/query"
)

// # Criteria Execution

// SelectRows compiles criteria with [Select] and collects every row through scan.
// Errors are returned raw; repositories classify them with dberr.Wrap.
func SelectRows[T any](ctx context.Context, db Querier, table Table, criteria query.Criteria, scan pgx.RowToFunc[T]) ([]T, error) {
	sql, args, err := Select(table, criteria)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	// CollectRows closes rows.
	return pgx.CollectRows(rows, scan)
}

// CountRows compiles criteria with [Count] and returns the matching row count.
func CountRows(ctx context.Context, db Querier, table Table, criteria query.Criteria) (int, error) {
	sql, args, err := Count(table, criteria)
	if err != nil {
		return 0, err
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
