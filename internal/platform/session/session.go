// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session provides per-visitor key/value storage.

A visitor is identified by an opaque session id (carried in a cookie by
[middleware.Session]). Handlers never see the store directly: they receive a
[Handle] bound to the caller's id and read or write typed values through it.

Backends:

  - RedisStore: one Redis hash per session with a sliding TTL.
  - MemoryStore: process-local map, used by tests and single-node development.
*/
package session

import (
	"context"
	"strconv"
)

// Store persists string values per (session id, key) pair.
//
// A missing key is not an error: Get reports found == false.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (value string, found bool, err error)
	Set(ctx context.Context, sessionID, key, value string) error
}

// Handle binds a [Store] to one visitor's session id.
type Handle struct {
	id    string
	store Store
}

// NewHandle returns a handle for the given session id.
func NewHandle(id string, store Store) *Handle {
	return &Handle{id: id, store: store}
}

// ID returns the session id the handle is bound to.
func (h *Handle) ID() string {
	return h.id
}

// Int reads an integer value. Absent or unparsable values yield fallback.
func (h *Handle) Int(ctx context.Context, key string, fallback int) (int, error) {
	raw, found, err := h.store.Get(ctx, h.id, key)
	if err != nil {
		return 0, err
	}
	if !found {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, nil
	}
	return value, nil
}

// SetInt stores an integer value.
func (h *Handle) SetInt(ctx context.Context, key string, value int) error {
	return h.store.Set(ctx, h.id, key, strconv.Itoa(value))
}
