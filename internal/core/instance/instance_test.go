package instance

import (
	"net/url"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/pointer"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestStatusID_UnmarshalJSON(t *testing.T) {
	var fromNumber, fromString struct {
		Status StatusID `json:"status_id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status_id": 2}`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`{"status_id": "2"}`), &fromString))

	assert.Equal(t, StatusID(2), fromNumber.Status)
	assert.Equal(t, fromNumber.Status, fromString.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status_id": "on loan"}`), &fromString))
	assert.Error(t, json.Unmarshal([]byte(`{"status_id": 0}`), &fromString))
}

func TestParseStatusID(t *testing.T) {
	id, err := ParseStatusID(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, StatusID(2), id)

	_, err = ParseStatusID("-1")
	assert.Error(t, err)
}

func TestBookInstance_IsOverdue(t *testing.T) {
	today := date.New(2026, time.March, 10)

	tests := []struct {
		name    string
		dueBack *date.Date
		want    bool
	}{
		{"No due date", nil, false},
		{"Due yesterday", pointer.To(date.New(2026, time.March, 9)), true},
		{"Due today", pointer.To(today), false},
		{"Due tomorrow", pointer.To(date.New(2026, time.March, 11)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instance := &BookInstance{DueBack: tt.dueBack}
			assert.Equal(t, tt.want, instance.IsOverdue(today))
		})
	}
}

func TestNewView(t *testing.T) {
	today := date.New(2026, time.March, 10)

	overdue := NewView(&BookInstance{DueBack: pointer.To(date.New(2026, time.March, 7))}, today)
	assert.True(t, overdue.IsOverdue)
	assert.Equal(t, "3 days ago", overdue.DueBackRelative)

	upcoming := NewView(&BookInstance{DueBack: pointer.To(date.New(2026, time.March, 13))}, today)
	assert.False(t, upcoming.IsOverdue)
	assert.Equal(t, "3 days from now", upcoming.DueBackRelative)

	assert.Equal(t, "today", NewView(&BookInstance{DueBack: pointer.To(today)}, today).DueBackRelative)
	assert.Empty(t, NewView(&BookInstance{}, today).DueBackRelative)
}

func TestView_JSONFlattensInstance(t *testing.T) {
	view := NewView(&BookInstance{ID: 4, Imprint: "Penguin, 2003", StatusID: pointer.To(StatusID(2))}, date.New(2026, time.March, 10))

	encoded, err := json.Marshal(view)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 4,
		"book_id": null,
		"inventory_number": null,
		"imprint": "Penguin, 2003",
		"status_id": 2,
		"due_back": null,
		"borrower_id": null,
		"is_overdue": false
	}`, string(encoded))
}

func TestInput_BindForm(t *testing.T) {
	var input Input
	err := input.BindForm(url.Values{
		FieldBookID:   {"7"},
		FieldImprint:  {"Vintage"},
		FieldStatusID: {"2"},
		FieldDueBack:  {"2026-04-01"},
	})

	require.NoError(t, err)
	assert.Equal(t, 7, pointer.Val(input.BookID))
	assert.Equal(t, StatusID(2), pointer.Val(input.StatusID))
	assert.Equal(t, "2026-04-01", input.DueBack)

	assert.Error(t, (&Input{}).BindForm(url.Values{FieldStatusID: {"lent"}}))
}
