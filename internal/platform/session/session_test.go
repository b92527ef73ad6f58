// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/internal/platform/session"
)

/*
TestHandle_IntDefault verifies the fallback for absent keys.
*/
func TestHandle_IntDefault(t *testing.T) {
	handle := session.NewHandle("visitor-1", session.NewMemoryStore())

	value, err := handle.Int(context.Background(), "num_visits", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

/*
TestHandle_RoundTrip verifies that written values are read back per session.
*/
func TestHandle_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	first := session.NewHandle("visitor-1", store)
	second := session.NewHandle("visitor-2", store)

	require.NoError(t, first.SetInt(ctx, "num_visits", 5))

	value, err := first.Int(ctx, "num_visits", 1)
	require.NoError(t, err)
	assert.Equal(t, 5, value)

	// Sessions are isolated from each other
	value, err = second.Int(ctx, "num_visits", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

/*
TestHandle_CorruptValue verifies that garbage falls back to the default.
*/
func TestHandle_CorruptValue(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "visitor-1", "num_visits", "many"))

	value, err := session.NewHandle("visitor-1", store).Int(ctx, "num_visits", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}
