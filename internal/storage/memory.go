// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package storage

import (
	"context"
	"sync"

	"github.com/tomtom215/shelfmatch/internal/profile"
)

// MemoryStore keeps encoded profiles in a map. Values are stored encoded so
// callers can never alias stored state.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load returns the stored profile or profile.ErrNotFound.
func (s *MemoryStore) Load(_ context.Context, profileID string) (*profile.Profile, error) {
	s.mu.RLock()
	data, ok := s.data[profileID]
	s.mu.RUnlock()

	if !ok {
		return nil, profile.ErrNotFound
	}
	return decodeProfile(data)
}

// Save replaces the stored profile.
func (s *MemoryStore) Save(_ context.Context, profileID string, p *profile.Profile) error {
	data, err := encodeProfile(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[profileID] = data
	s.mu.Unlock()
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(_ context.Context) error { return nil }
