// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/pkg/date"
	"github.com/taibuivan/webbooks/pkg/pointer"
)

func TestParse(t *testing.T) {
	d, err := date.Parse("1860-01-29")
	require.NoError(t, err)
	assert.Equal(t, date.New(1860, time.January, 29), d)

	_, err = date.Parse("29/01/1860")
	assert.Error(t, err)
}

func TestParseOptional(t *testing.T) {
	d, err := date.ParseOptional("  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = date.ParseOptional("1904-07-15")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "1904-07-15", d.String())
}

func TestOf_IgnoresTimeOfDay(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*3600)
	late := time.Date(2026, time.March, 1, 23, 59, 0, 0, zone)

	assert.Equal(t, date.New(2026, time.March, 1), date.Of(late))
}

func TestComparison(t *testing.T) {
	today := date.New(2026, time.October, 18)
	yesterday := date.New(2026, time.October, 17)

	assert.True(t, yesterday.Before(today))
	assert.False(t, today.Before(today))
	assert.True(t, today.After(yesterday))
	assert.True(t, today.Equal(date.New(2026, time.October, 18)))
}

func TestJSON(t *testing.T) {
	type payload struct {
		Due *date.Date `json:"due"`
	}

	encoded, err := json.Marshal(payload{Due: pointer.To(date.New(2026, time.May, 2))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2026-05-02"}`, string(encoded))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2026-05-02"}`), &decoded))
	require.NotNil(t, decoded.Due)
	assert.Equal(t, date.New(2026, time.May, 2), *decoded.Due)

	require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &decoded))
	assert.Nil(t, decoded.Due)
}

func TestNullableBridging(t *testing.T) {
	assert.Nil(t, date.FromTime(nil))
	assert.Nil(t, date.TimeOf(nil))

	d := date.New(2026, time.January, 5)
	assert.Equal(t, &d, date.FromTime(date.TimeOf(&d)))
}
