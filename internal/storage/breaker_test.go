// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package storage

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/shelfmatch/internal/config"
	"github.com/tomtom215/shelfmatch/internal/metrics"
	"github.com/tomtom215/shelfmatch/internal/profile"
)

// flakyStore fails every call while failing is set.
type flakyStore struct {
	failing atomic.Bool
	calls   atomic.Int32
	inner   *MemoryStore
}

func (f *flakyStore) Load(ctx context.Context, id string) (*profile.Profile, error) {
	f.calls.Add(1)
	if f.failing.Load() {
		return nil, errors.New("disk error")
	}
	return f.inner.Load(ctx, id)
}

func (f *flakyStore) Save(ctx context.Context, id string, p *profile.Profile) error {
	f.calls.Add(1)
	if f.failing.Load() {
		return errors.New("disk error")
	}
	return f.inner.Save(ctx, id, p)
}

func TestBreakerStore_TripsAndRecovers(t *testing.T) {
	inner := &flakyStore{inner: NewMemoryStore()}
	inner.failing.Store(true)

	store := NewBreakerStore(inner, BreakerConfig{
		Name:             "test",
		FailureThreshold: 3,
		Timeout:          50 * time.Millisecond,
		MaxRequests:      1,
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Save(ctx, "local", profile.New()); err == nil || errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("call %d: error = %v, want underlying failure", i, err)
		}
	}

	if store.State() != "open" {
		t.Fatalf("State() = %s, want open", store.State())
	}
	if got := testutil.ToFloat64(metrics.ProfileStoreBreakerState); got != 2 {
		t.Errorf("breaker gauge = %v, want 2", got)
	}

	callsBefore := inner.calls.Load()
	if err := store.Save(ctx, "local", profile.New()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("open breaker error = %v, want ErrStoreUnavailable", err)
	}
	if inner.calls.Load() != callsBefore {
		t.Error("open breaker should not call the wrapped store")
	}
	if err := store.Ping(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Ping() = %v, want ErrStoreUnavailable", err)
	}

	inner.failing.Store(false)
	time.Sleep(80 * time.Millisecond)

	if err := store.Save(ctx, "local", profile.New()); err != nil {
		t.Fatalf("probe Save() error = %v", err)
	}
	if store.State() != "closed" {
		t.Errorf("State() = %s, want closed", store.State())
	}
}

func TestBreakerStore_NotFoundIsNotFailure(t *testing.T) {
	store := NewBreakerStore(NewMemoryStore(), BreakerConfig{Name: "nf", FailureThreshold: 1, Timeout: time.Minute})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Load(ctx, "missing"); !errors.Is(err, profile.ErrNotFound) {
			t.Fatalf("Load() error = %v, want ErrNotFound", err)
		}
	}
	if store.State() != "closed" {
		t.Errorf("State() = %s, want closed", store.State())
	}
}

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{"badger", BackendBadger, false},
		{"file", BackendFile, false},
		{"memory", BackendMemory, false},
		{"unknown", "postgres", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(&config.StorageConfig{
				Backend:         tt.backend,
				Path:            t.TempDir(),
				BreakerFailures: 5,
				BreakerTimeout:  time.Second,
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer b.Close()

			if b.Name != tt.backend {
				t.Errorf("Name = %s, want %s", b.Name, tt.backend)
			}
			if err := b.Ping(context.Background()); err != nil {
				t.Errorf("Ping() error = %v", err)
			}
			storeContract(t, b.Store)
		})
	}
}
