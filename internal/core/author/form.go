package author

// FormField describes one input of the author form.
type FormField struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	Required  bool   `json:"required"`
	MaxLength int    `json:"max_length,omitempty"`
	Value     string `json:"value"`
}

// Form is the descriptor a renderer needs to draw the author form.
type Form struct {
	Method string      `json:"method"`
	Action string      `json:"action"`
	Fields []FormField `json:"fields"`
}

// Management is the payload of the author management page: every author
// plus an empty form for adding another.
type Management struct {
	Authors []*Author `json:"authors"`
	Form    Form      `json:"form"`
}

// EmptyForm returns the blank "add author" form posting to action.
func EmptyForm(action string) Form {
	return Form{
		Method: "POST",
		Action: action,
		Fields: []FormField{
			{Name: FieldFirstName, Label: "First name", Type: "text", Required: true, MaxLength: MaxNameLength},
			{Name: FieldLastName, Label: "Last name", Type: "text", Required: true, MaxLength: MaxNameLength},
			{Name: FieldDateOfBirth, Label: "Date of birth", Type: "date"},
			{Name: FieldDateOfDeath, Label: "Date of death", Type: "date"},
		},
	}
}
