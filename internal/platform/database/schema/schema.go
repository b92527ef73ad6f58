// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names of the database.
//
// Repositories build SQL from these names instead of string literals, so a
// rename in a migration is a one-line change here. Each table also exposes a
// logical-field map consumed by the query builder.
package schema

import "github.com/taibuivan/webbooks/internal/platform/constants"

func qualified(name string) string {
	return constants.SchemaCatalog + "." + name
}
