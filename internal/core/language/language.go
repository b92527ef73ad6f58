package language

import (
	"net/url"

	"github.com/taibuivan/webbooks/pkg/normalize"
)

// Language is the language a book is written in (e.g. "English", "Русский").
type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Input is the typed create payload.
type Input struct {
	Name string `json:"name"`
}

// BindForm implements requestutil.FormBinder.
func (input *Input) BindForm(values url.Values) error {
	input.Name = values.Get(FieldName)
	return nil
}

func (input *Input) normalize() {
	input.Name = normalize.Text(input.Name)
}

// Global field names and limits for validation
const (
	FieldName = "name"

	MaxNameLength = 20
)
