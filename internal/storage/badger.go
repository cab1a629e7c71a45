// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/shelfmatch/internal/profile"
)

const profileKeyPrefix = "profile:"

// OpenBadger opens a BadgerDB at path. With inMemory set the path is ignored
// and nothing touches disk.
func OpenBadger(path string, inMemory bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for profiles: %w", err)
	}
	return db, nil
}

// BadgerStore implements profile.Store using BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore creates a store over an open database. The caller owns db.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Load retrieves a profile by ID.
func (s *BadgerStore) Load(ctx context.Context, profileID string) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var p *profile.Profile
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(profileID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return profile.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		return item.Value(func(val []byte) error {
			decoded, derr := decodeProfile(val)
			if derr != nil {
				return derr
			}
			p = decoded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Save stores the full profile under its ID, replacing any previous value.
func (s *BadgerStore) Save(ctx context.Context, profileID string, p *profile.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeProfile(p)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(profileKey(profileID), data); err != nil {
			return fmt.Errorf("set profile: %w", err)
		}
		return nil
	})
}

// Ping reports whether the database is still open.
func (s *BadgerStore) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger db closed")
	}
	return nil
}

func profileKey(profileID string) []byte {
	return []byte(profileKeyPrefix + profileID)
}

// gcDiscardRatio is the value-log discard ratio passed to RunValueLogGC.
const gcDiscardRatio = 0.5

// CollectGarbage runs BadgerDB value-log GC until nothing is left to
// rewrite. Backends without a database return nil.
func (b *Backend) CollectGarbage() error {
	if b.db == nil {
		return nil
	}
	for {
		err := b.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run value log gc: %w", err)
		}
	}
}
