// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/metrics"
)

// Mutation operation names, used as metric labels and log fields.
const (
	OpToggleLike = "toggle_like"
	OpSetRating  = "set_rating"
	OpReset      = "reset"
)

// Manager owns the single mutable profile. All read-modify-write cycles run
// under mu so concurrent API requests cannot lose updates.
type Manager struct {
	mu        sync.Mutex
	store     Store
	profileID string
	current   *Profile
}

// NewManager creates a manager over store. The profile starts empty until Open.
func NewManager(store Store, profileID string) *Manager {
	return &Manager{
		store:     store,
		profileID: profileID,
		current:   New(),
	}
}

// ProfileID returns the id the manager persists under.
func (m *Manager) ProfileID() string {
	return m.profileID
}

// Open loads the persisted profile. Missing or corrupt data yields an empty
// profile. Any other store error is returned, and the manager keeps an empty
// profile so the caller may continue degraded.
func (m *Manager) Open(ctx context.Context) error {
	ctx = m.logContext(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.store.Load(ctx, m.profileID)
	switch {
	case err == nil:
		if verr := p.Validate(); verr != nil {
			logging.Ctx(ctx).Warn().Err(verr).
				Msg("persisted profile invalid, starting empty")
			m.current = New()
			return nil
		}
		m.current = p
		logging.Ctx(ctx).Info().
			Int("liked", len(p.liked)).
			Int("rated", len(p.ratings)).
			Msg("profile loaded")
		return nil
	case errors.Is(err, ErrNotFound):
		m.current = New()
		logging.Ctx(ctx).Info().Msg("no stored profile, starting empty")
		return nil
	case errors.Is(err, ErrCorrupt):
		m.current = New()
		logging.Ctx(ctx).Warn().Err(err).
			Msg("stored profile corrupt, starting empty")
		return nil
	default:
		m.current = New()
		metrics.RecordStoreError("load")
		return fmt.Errorf("load profile %q: %w", m.profileID, err)
	}
}

// logContext tags ctx with the profile id for logging.Ctx.
func (m *Manager) logContext(ctx context.Context) context.Context {
	return logging.ContextWithProfileID(ctx, m.profileID)
}

// Snapshot returns a deep copy of the current profile.
func (m *Manager) Snapshot() *Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Clone()
}

// ToggleLike flips the like on itemID and persists.
func (m *Manager) ToggleLike(ctx context.Context, itemID int) (*Profile, error) {
	ctx = m.logContext(ctx)
	return m.mutate(ctx, OpToggleLike, func(p *Profile) error {
		liked := p.ToggleLike(itemID)
		logging.Ctx(ctx).Debug().Int("item_id", itemID).Bool("liked", liked).Msg("like toggled")
		return nil
	})
}

// SetRating rates itemID and persists. An invalid rating leaves the profile
// unchanged and nothing is saved.
func (m *Manager) SetRating(ctx context.Context, itemID, rating int) (*Profile, error) {
	ctx = m.logContext(ctx)
	return m.mutate(ctx, OpSetRating, func(p *Profile) error {
		if err := p.SetRating(itemID, rating); err != nil {
			return err
		}
		logging.Ctx(ctx).Debug().Int("item_id", itemID).Int("rating", rating).Msg("rating set")
		return nil
	})
}

// Reset clears the profile and persists.
func (m *Manager) Reset(ctx context.Context) (*Profile, error) {
	ctx = m.logContext(ctx)
	return m.mutate(ctx, OpReset, func(p *Profile) error {
		p.Reset()
		logging.Ctx(ctx).Info().Msg("profile reset")
		return nil
	})
}

// mutate applies fn and saves. When the save fails the in-memory change is
// kept and the error is returned with the snapshot; the next successful save
// persists it.
func (m *Manager) mutate(ctx context.Context, op string, fn func(*Profile) error) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := fn(m.current); err != nil {
		return m.current.Clone(), err
	}
	metrics.RecordProfileMutation(op)

	snapshot := m.current.Clone()
	if err := m.store.Save(ctx, m.profileID, snapshot); err != nil {
		metrics.RecordStoreError("save")
		logging.Ctx(ctx).Error().Err(err).
			Str("operation", op).
			Msg("failed to persist profile")
		return snapshot, fmt.Errorf("%w: profile %q: %w", ErrSaveFailed, m.profileID, err)
	}
	return snapshot, nil
}
