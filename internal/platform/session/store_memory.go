// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"sync"
)

// MemoryStore implements [Store] with a mutex-guarded map.
//
// Values do not expire. It is meant for tests and single-process development.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]map[string]string
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]map[string]string)}
}

// Get implements [Store].
func (store *MemoryStore) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	value, found := store.values[sessionID][key]
	return value, found, nil
}

// Set implements [Store].
func (store *MemoryStore) Set(_ context.Context, sessionID, key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	bucket, ok := store.values[sessionID]
	if !ok {
		bucket = make(map[string]string)
		store.values[sessionID] = bucket
	}
	bucket[key] = value
	return nil
}
