package instance

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/taibuivan/webbooks/internal/platform/validate"
	"github.com/taibuivan/webbooks/pkg/convert"
	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/normalize"
)

// # Status

// StatusID is the key of a [Status] row.
//
// It decodes from both JSON numbers and numeric strings, so `2` and `"2"`
// name the same status.
type StatusID int

// ParseStatusID converts the textual form of a status id.
func ParseStatusID(s string) (StatusID, error) {
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || value < 1 {
		return 0, fmt.Errorf("invalid status id %q", s)
	}
	return StatusID(value), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *StatusID) UnmarshalJSON(data []byte) error {
	parsed, err := ParseStatusID(string(bytes.Trim(data, `"`)))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Status is the loan state of a copy (e.g. "On loan").
type Status struct {
	ID   StatusID `json:"id"`
	Name string   `json:"name"`
}

// Codes maps semantic states to configured status ids.
type Codes struct {
	Available StatusID
	OnLoan    StatusID
}

// # Book Instance

// BookInstance is one physical copy of a book.
type BookInstance struct {
	ID              int        `json:"id"`
	BookID          *int       `json:"book_id"`
	BookTitle       string     `json:"book_title,omitempty"`
	InventoryNumber *string    `json:"inventory_number"`
	Imprint         string     `json:"imprint"`
	StatusID        *StatusID  `json:"status_id"`
	DueBack         *date.Date `json:"due_back"`
	BorrowerID      *string    `json:"borrower_id"`
}

// IsOverdue reports whether the copy was due back before today.
func (instance *BookInstance) IsOverdue(today date.Date) bool {
	return instance.DueBack != nil && instance.DueBack.Before(today)
}

// View decorates an instance with values derived from the current date.
type View struct {
	*BookInstance
	IsOverdue       bool   `json:"is_overdue"`
	DueBackRelative string `json:"due_back_relative,omitempty"`
}

// NewView evaluates the instance against today.
func NewView(instance *BookInstance, today date.Date) *View {
	view := &View{BookInstance: instance, IsOverdue: instance.IsOverdue(today)}

	switch {
	case instance.DueBack == nil:
	case instance.DueBack.Equal(today):
		view.DueBackRelative = "today"
	default:
		view.DueBackRelative = humanize.RelTime(instance.DueBack.Time(), today.Time(), "ago", "from now")
	}
	return view
}

// # Input

// Input is the typed create/update payload. An update overwrites every field,
// which is how a copy is lent out or returned.
type Input struct {
	BookID          *int      `json:"book_id"`
	InventoryNumber string    `json:"inventory_number"`
	Imprint         string    `json:"imprint"`
	StatusID        *StatusID `json:"status_id"`
	DueBack         string    `json:"due_back"`
	BorrowerID      string    `json:"borrower_id"`
}

// BindForm implements requestutil.FormBinder.
func (input *Input) BindForm(values url.Values) error {
	input.BookID = convert.ToIntPtr(values.Get(FieldBookID))
	input.InventoryNumber = values.Get(FieldInventoryNumber)
	input.Imprint = values.Get(FieldImprint)
	input.DueBack = values.Get(FieldDueBack)
	input.BorrowerID = values.Get(FieldBorrowerID)

	if raw := strings.TrimSpace(values.Get(FieldStatusID)); raw != "" {
		status, err := ParseStatusID(raw)
		if err != nil {
			return validate.RequiredError(FieldStatusID, "Must be a positive identifier")
		}
		input.StatusID = &status
	}
	return nil
}

func (input *Input) normalize() {
	input.InventoryNumber = normalize.Code(input.InventoryNumber)
	input.Imprint = normalize.Text(input.Imprint)
	input.BorrowerID = strings.ToLower(strings.TrimSpace(input.BorrowerID))
}

// Global field names and limits for validation
const (
	FieldBookID          = "book_id"
	FieldInventoryNumber = "inventory_number"
	FieldImprint         = "imprint"
	FieldStatusID        = "status_id"
	FieldDueBack         = "due_back"
	FieldBorrowerID      = "borrower_id"

	MaxInventoryNumberLength = 20
	MaxImprintLength         = 200
)
