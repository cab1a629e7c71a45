// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package storage

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/shelfmatch/internal/config"
	"github.com/tomtom215/shelfmatch/internal/profile"
)

// Backend names accepted by storage.backend.
const (
	BackendBadger = "badger"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Pinger is implemented by stores that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend is an opened, breaker-wrapped store plus whatever must be closed
// on shutdown.
type Backend struct {
	// Store is the breaker-wrapped store handed to profile.Manager.
	Store *BreakerStore

	// Name is the configured backend name.
	Name string

	db *badger.DB
}

// New opens the backend selected by cfg.
func New(cfg *config.StorageConfig) (*Backend, error) {
	var (
		inner profile.Store
		db    *badger.DB
	)

	switch cfg.Backend {
	case BackendBadger, "":
		opened, err := OpenBadger(cfg.Path, false)
		if err != nil {
			return nil, err
		}
		db = opened
		inner = NewBadgerStore(db)
	case BackendFile:
		fs, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		inner = fs
	case BackendMemory:
		inner = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	breaker := NewBreakerStore(inner, BreakerConfig{
		Name:             "profile-store-" + nameOr(cfg.Backend, BackendBadger),
		FailureThreshold: cfg.BreakerFailures,
		Timeout:          cfg.BreakerTimeout,
		MaxRequests:      1,
	})

	return &Backend{Store: breaker, Name: nameOr(cfg.Backend, BackendBadger), db: db}, nil
}

// Ping reports store health for readiness checks.
func (b *Backend) Ping(ctx context.Context) error {
	return b.Store.Ping(ctx)
}

// Close releases the underlying database, if any.
func (b *Backend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
