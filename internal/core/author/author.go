package author

import (
	"net/url"

	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/normalize"
)

// Author is a writer credited on one or more books.
type Author struct {
	ID          int        `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *date.Date `json:"date_of_birth"`
	DateOfDeath *date.Date `json:"date_of_death"`
}

// Input is the typed create/update payload.
//
// Dates stay strings until validation so a malformed value is reported as a
// field error instead of a decoding failure.
type Input struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	DateOfDeath string `json:"date_of_death"`
}

// BindForm implements requestutil.FormBinder.
func (input *Input) BindForm(values url.Values) error {
	input.FirstName = values.Get(FieldFirstName)
	input.LastName = values.Get(FieldLastName)
	input.DateOfBirth = values.Get(FieldDateOfBirth)
	input.DateOfDeath = values.Get(FieldDateOfDeath)
	return nil
}

func (input *Input) normalize() {
	input.FirstName = normalize.Text(input.FirstName)
	input.LastName = normalize.Text(input.LastName)
}

// Global field names and limits for validation
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldDateOfBirth = "date_of_birth"
	FieldDateOfDeath = "date_of_death"

	MaxNameLength = 100
)
