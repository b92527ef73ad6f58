// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream
	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations are the caller's fault
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError("Referenced record does not exist", apperr.FieldError{
				Field:   pgErr.ColumnName,
				Message: "Unknown reference (" + pgErr.ConstraintName + ")",
			})
		case pgerrcode.NotNullViolation:
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   pgErr.ColumnName,
				Message: "This field is required",
			})
		case pgerrcode.StringDataRightTruncationDataException:
			return apperr.ValidationError("Value too long", apperr.FieldError{
				Field:   pgErr.ColumnName,
				Message: "Value exceeds the column length",
			})
		case pgerrcode.CheckViolation:
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   pgErr.ColumnName,
				Message: "Value rejected by " + pgErr.ConstraintName,
			})
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("Record already exists")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// NotFound returns a resource-specific 404 when err is [ErrNotFound], and
// err unchanged otherwise.
func NotFound(err error, resource string) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound(resource)
	}
	return err
}
