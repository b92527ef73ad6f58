// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar date without a time of day.

Birth dates and due-back dates are whole days. Keeping them in a dedicated
type avoids timezone drift when a timestamp at midnight is shifted into
another zone, and gives them a "YYYY-MM-DD" JSON form.
*/
package date

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format of a [Date].
const Layout = time.DateOnly

// Date is a calendar day. The zero value is not a valid date.
type Date struct {
	t time.Time // midnight UTC
}

// New returns the date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of returns the calendar day of t in t's own location.
func Of(t time.Time) Date {
	return New(t.Date())
}

// Today returns the current local calendar day.
func Today() Date {
	return Of(time.Now())
}

// Parse reads a "YYYY-MM-DD" string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("date: %q is not a YYYY-MM-DD date", s)
	}
	return Date{t: t}, nil
}

// ParseOptional reads an optional form value: blank input is nil.
func ParseOptional(s string) (*Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// # Comparison

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is a later day than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(Layout) }

// # Nullable Column Bridging

// FromTime converts a scanned nullable DATE column.
func FromTime(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := New(t.Date())
	return &d
}

// TimeOf converts an optional date for a nullable DATE parameter.
func TimeOf(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.t
	return &t
}

// # Serialization

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
