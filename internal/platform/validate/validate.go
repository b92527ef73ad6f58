// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// Rules mirror the column constraints of the catalog schema, so a record that
// passes validation is not rejected by the database for length or presence.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/uuid"
)

// Messages shared with handlers that reject input before validation runs.
const (
	MessageRequired    = "This field is required"
	MessageInvalidDate = "Enter a valid date (YYYY-MM-DD)"
	MessagePositiveID  = "Must be a positive identifier"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

	// ErrInvalidForm is returned when a form-encoded body cannot be parsed.
	ErrInvalidForm = apperr.ValidationError("Invalid form payload")
)

// Validator collects failures for one input. It is not safe for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, MessageRequired)
	}
	return v
}

// MaxLen counts runes, as the VARCHAR limits do.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Positive fails if the optional reference is present but not a positive id.
func (v *Validator) Positive(field string, value *int) *Validator {
	if value != nil && *value < 1 {
		v.add(field, MessagePositiveID)
	}
	return v
}

func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// UUID fails if the value is set and is not a UUID. Empty means "none".
func (v *Validator) UUID(field, value string) *Validator {
	if value != "" && !uuid.Valid(value) {
		v.add(field, "Must be a valid UUID")
	}
	return v
}

/*
Date parses an optional YYYY-MM-DD value into target.

Blank input leaves target nil. Malformed input records a failure and also
leaves target nil, so later rules comparing dates simply skip it.

	var born *date.Date
	validator.Date(FieldDateOfBirth, input.DateOfBirth, &born)
*/
func (v *Validator) Date(field, raw string, target **date.Date) *Validator {
	parsed, err := date.ParseOptional(raw)
	if err != nil {
		v.add(field, MessageInvalidDate)
		*target = nil
		return v
	}
	*target = parsed
	return v
}

// NotBefore fails when both dates are known and later precedes earlier.
func (v *Validator) NotBefore(field string, later, earlier *date.Date, message string) *Validator {
	if later != nil && earlier != nil && later.Before(*earlier) {
		v.add(field, message)
	}
	return v
}

// Custom records message when failed is true.
//
//	v.Custom(FieldUsername, strings.Contains(name, "@"), "Usernames cannot contain @")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns the collected failures as one VALIDATION_ERROR, or nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
