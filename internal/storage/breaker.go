// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/metrics"
	"github.com/tomtom215/shelfmatch/internal/profile"
)

// ErrStoreUnavailable is returned while the breaker is open.
var ErrStoreUnavailable = errors.New("profile store unavailable")

// BreakerConfig configures the store circuit breaker.
type BreakerConfig struct {
	// Name identifies the breaker in logs.
	Name string

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before allowing a probe.
	Timeout time.Duration

	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32
}

// DefaultBreakerConfig returns production defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "profile-store",
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

// BreakerStore wraps a profile.Store with a circuit breaker.
type BreakerStore struct {
	next profile.Store
	cb   *gobreaker.CircuitBreaker[interface{}]
}

// NewBreakerStore wraps next.
func NewBreakerStore(next profile.Store, cfg BreakerConfig) *BreakerStore {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// Missing or corrupt data is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, profile.ErrNotFound) ||
				errors.Is(err, profile.ErrCorrupt) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetStoreBreakerState(int(to))
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("profile store circuit breaker state changed")
		},
	}

	return &BreakerStore{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[interface{}](settings),
	}
}

// Load delegates to the wrapped store unless the breaker is open.
func (s *BreakerStore) Load(ctx context.Context, profileID string) (*profile.Profile, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		return s.next.Load(ctx, profileID)
	})
	if err != nil {
		return nil, mapBreakerError(err)
	}
	p, ok := result.(*profile.Profile)
	if !ok {
		return nil, fmt.Errorf("unexpected load result %T", result)
	}
	return p, nil
}

// Save delegates to the wrapped store unless the breaker is open.
func (s *BreakerStore) Save(ctx context.Context, profileID string, p *profile.Profile) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.Save(ctx, profileID, p)
	})
	return mapBreakerError(err)
}

// Ping fails while the breaker is open, otherwise asks the wrapped store.
func (s *BreakerStore) Ping(ctx context.Context) error {
	if s.cb.State() == gobreaker.StateOpen {
		return ErrStoreUnavailable
	}
	if pinger, ok := s.next.(Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// State returns the breaker state name.
func (s *BreakerStore) State() string {
	return s.cb.State().String()
}

func mapBreakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
