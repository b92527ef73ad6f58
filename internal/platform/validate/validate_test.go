// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/validate"
	"github.com/taibuivan/webbooks/pkg/date"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Chekhov", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "tai").
		MinLen("username", "tai", 3).
		MaxLen("username", "tai", 10).
		Email("email", "tai@webbooks.local").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("username", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_MaxLen counts Unicode characters, not bytes.
*/
func TestValidator_MaxLen(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		max      int
		hasError bool
	}{
		{"ascii_within", "9785170903336", 13, false},
		{"ascii_over", "97851709033361234567", 13, true},
		{"cyrillic_within", "Чехов", 5, false},
		{"cyrillic_over", "Чеховы", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MaxLen("isbn", tt.value, tt.max)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Positive accepts absent references and rejects non-positive ids.
*/
func TestValidator_Positive(t *testing.T) {
	zero, one := 0, 1

	assert.False(t, (&validate.Validator{}).Positive("genre_id", nil).HasErrors())
	assert.False(t, (&validate.Validator{}).Positive("genre_id", &one).HasErrors())
	assert.True(t, (&validate.Validator{}).Positive("genre_id", &zero).HasErrors())
}

/*
TestValidator_UUID checks the borrower identifier format rule.
*/
func TestValidator_UUID(t *testing.T) {
	assert.False(t, (&validate.Validator{}).UUID("borrower_id", "0190f5a4-1d2b-7c3e-8f40-123456789abc").HasErrors())
	assert.True(t, (&validate.Validator{}).UUID("borrower_id", "not-a-uuid").HasErrors())
	assert.False(t, (&validate.Validator{}).UUID("borrower_id", "").HasErrors())
}

/*
TestValidator_Date parses optional dates and reports malformed ones.
*/
func TestValidator_Date(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		hasError bool
	}{
		{"blank", "", "", false},
		{"valid", "1860-01-29", "1860-01-29", false},
		{"padded", " 1904-07-15 ", "1904-07-15", false},
		{"wrong_layout", "29/01/1860", "", true},
		{"impossible_day", "1860-02-30", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parsed *date.Date
			v := (&validate.Validator{}).Date("date_of_birth", tt.raw, &parsed)

			assert.Equal(t, tt.hasError, v.HasErrors())
			if tt.want == "" {
				assert.Nil(t, parsed)
			} else {
				require.NotNil(t, parsed)
				assert.Equal(t, tt.want, parsed.String())
			}
		})
	}
}

func TestValidator_NotBefore(t *testing.T) {
	born := date.New(1860, 1, 29)
	died := date.New(1904, 7, 15)

	assert.False(t, (&validate.Validator{}).NotBefore("date_of_death", &died, &born, "x").HasErrors())
	assert.True(t, (&validate.Validator{}).NotBefore("date_of_death", &born, &died, "x").HasErrors())
	assert.False(t, (&validate.Validator{}).NotBefore("date_of_death", nil, &born, "x").HasErrors())
}
